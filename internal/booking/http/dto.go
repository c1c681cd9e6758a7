package http

import (
	"net/http"
	"time"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
	custHttp "github.com/venuedesk/hall-booking-backend/internal/customer/http"
	hallHttp "github.com/venuedesk/hall-booking-backend/internal/hall/http"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var errBadDate = apperror.New(http.StatusBadRequest, "Invalid booking date")

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	HallID     string `form:"hallId"`
	CustomerID string `form:"customerId"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

type CreateBookingRequest struct {
	HallID         string  `json:"hallId" binding:"required"`
	CustomerID     string  `json:"customerId" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	TimeSlot       string  `json:"timeSlot" binding:"required,oneof=Morning Evening"`
	TotalCost      float64 `json:"totalCost" binding:"required,gt=0"`
	AdvanceAmount  float64 `json:"advanceAmount" binding:"omitempty,gte=0"`
	Status         string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	AttendeesCount int     `json:"attendeesCount" binding:"required,gt=0"`
	CateringMenu   string  `json:"cateringMenu" binding:"required"`
	Notes          string  `json:"notes"`
}

type UpdateBookingRequest struct {
	HallID         *string  `json:"hallId"`
	CustomerID     *string  `json:"customerId"`
	Date           *string  `json:"date"`
	TimeSlot       *string  `json:"timeSlot" binding:"omitempty,oneof=Morning Evening"`
	TotalCost      *float64 `json:"totalCost" binding:"omitempty,gt=0"`
	AdvanceAmount  *float64 `json:"advanceAmount" binding:"omitempty,gte=0"`
	Status         *string  `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	AttendeesCount *int     `json:"attendeesCount" binding:"omitempty,gt=0"`
	CateringMenu   *string  `json:"cateringMenu"`
	Notes          *string  `json:"notes"`
}

// BookingResponse embeds hall and customer tags, the JSON shape the
// dashboard expects from populated booking reads.
type BookingResponse struct {
	ID             string               `json:"id"`
	Hall           hallHttp.HallTag     `json:"hall"`
	Customer       custHttp.CustomerTag `json:"customer"`
	Date           time.Time            `json:"date"`
	TimeSlot       string               `json:"timeSlot"`
	TotalCost      float64              `json:"totalCost"`
	AdvanceAmount  float64              `json:"advanceAmount"`
	BalanceAmount  float64              `json:"balanceAmount"`
	Status         string               `json:"status"`
	AttendeesCount int                  `json:"attendeesCount"`
	CateringMenu   string               `json:"cateringMenu"`
	Notes          string               `json:"notes"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

func newBookingResponse(b *booking.Booking, hallTag hallHttp.HallTag, custTag custHttp.CustomerTag) BookingResponse {
	return BookingResponse{
		ID:             b.ID.Hex(),
		Hall:           hallTag,
		Customer:       custTag,
		Date:           b.Date,
		TimeSlot:       string(b.TimeSlot),
		TotalCost:      b.TotalCost,
		AdvanceAmount:  b.AdvanceAmount,
		BalanceAmount:  b.BalanceAmount,
		Status:         string(b.Status),
		AttendeesCount: b.AttendeesCount,
		CateringMenu:   b.CateringMenu,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// parseDate accepts a plain calendar day or a full RFC 3339 timestamp;
// either way only the day part is kept.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return t, nil
}
