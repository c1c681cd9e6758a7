package booking

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "Booking not found")
	ErrSlotConflict    = apperror.New(http.StatusBadRequest, "Hall is already booked for this time period")
	ErrInvalidTimeSlot = apperror.New(http.StatusBadRequest, "Invalid time slot")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "Invalid booking status")
)

// TimeSlot is a coarse half-day booking window.
type TimeSlot string

const (
	SlotMorning TimeSlot = "Morning"
	SlotEvening TimeSlot = "Evening"
)

// ValidTimeSlot reports whether s is a known slot.
func ValidTimeSlot(s string) bool {
	return TimeSlot(s) == SlotMorning || TimeSlot(s) == SlotEvening
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking reserves a hall for one half-day slot on one calendar day.
// BalanceAmount is always TotalCost minus AdvanceAmount.
type Booking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	HallID         primitive.ObjectID `bson:"hallId" json:"hallId"`
	CustomerID     primitive.ObjectID `bson:"customerId" json:"customerId"`
	Date           time.Time          `bson:"date" json:"date"`
	TimeSlot       TimeSlot           `bson:"timeSlot" json:"timeSlot"`
	TotalCost      float64            `bson:"totalCost" json:"totalCost"`
	AdvanceAmount  float64            `bson:"advanceAmount" json:"advanceAmount"`
	BalanceAmount  float64            `bson:"balanceAmount" json:"balanceAmount"`
	Status         Status             `bson:"status" json:"status"`
	AttendeesCount int                `bson:"attendeesCount" json:"attendeesCount"`
	CateringMenu   string             `bson:"cateringMenu" json:"cateringMenu"`
	Notes          string             `bson:"notes" json:"notes"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Filter defines filter options for listing bookings.
type Filter struct {
	HallID     string
	CustomerID string
	Status     string
}

// DayOf truncates a timestamp to its UTC calendar day. Bookings are stored
// and compared at day granularity; two timestamps on the same day always
// normalize to the same value.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
