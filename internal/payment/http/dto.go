package http

import "time"

// ListPaymentsRequest defines query parameters for listing payments.
type ListPaymentsRequest struct {
	BookingID string `form:"bookingId"`
	Method    string `form:"method" binding:"omitempty,oneof=cash card online"`
	Status    string `form:"status" binding:"omitempty,oneof=paid unpaid"`
}

type RecordPaymentRequest struct {
	BookingID   string     `json:"bookingId" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Method      string     `json:"method" binding:"required,oneof=cash card online"`
	PaymentDate *time.Time `json:"paymentDate"`
	Status      string     `json:"status" binding:"omitempty,oneof=paid unpaid"`
}

type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	Method      *string    `json:"method" binding:"omitempty,oneof=cash card online"`
	PaymentDate *time.Time `json:"paymentDate"`
	Status      *string    `json:"status" binding:"omitempty,oneof=paid unpaid"`
}
