package http

import "time"

// ListExpensesRequest defines query parameters for listing expenses.
type ListExpensesRequest struct {
	BookingID string `form:"bookingId"`
	Category  string `form:"category" binding:"omitempty,oneof=decor catering labor misc"`
}

type CreateExpenseRequest struct {
	BookingID   string     `json:"bookingId"`
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Category    string     `json:"category" binding:"required,oneof=decor catering labor misc"`
	Date        *time.Time `json:"date"`
	CreatedBy   string     `json:"createdBy" binding:"required"`
}

type UpdateExpenseRequest struct {
	BookingID    *string    `json:"bookingId"`
	ClearBooking bool       `json:"clearBooking"`
	Description  *string    `json:"description"`
	Amount       *float64   `json:"amount" binding:"omitempty,gt=0"`
	Category     *string    `json:"category" binding:"omitempty,oneof=decor catering labor misc"`
	Date         *time.Time `json:"date"`
	CreatedBy    *string    `json:"createdBy"`
}
