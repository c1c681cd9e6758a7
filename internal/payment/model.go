package payment

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "Payment not found")
	ErrInvalidMethod = apperror.New(http.StatusBadRequest, "Invalid payment method")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "Invalid payment status")
)

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodOnline Method = "online"
)

// ValidMethod reports whether s is a known payment method.
func ValidMethod(s string) bool {
	switch Method(s) {
	case MethodCash, MethodCard, MethodOnline:
		return true
	}
	return false
}

type Status string

const (
	StatusPaid   Status = "paid"
	StatusUnpaid Status = "unpaid"
)

// ValidStatus reports whether s is a known payment status.
func ValidStatus(s string) bool {
	return Status(s) == StatusPaid || Status(s) == StatusUnpaid
}

// Payment records money received against a booking. Reference is a
// server-generated receipt identifier.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID   primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Method      Method             `bson:"method" json:"method"`
	PaymentDate time.Time          `bson:"paymentDate" json:"paymentDate"`
	Status      Status             `bson:"status" json:"status"`
	Reference   string             `bson:"reference" json:"reference"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Filter defines filter options for listing payments.
type Filter struct {
	BookingID string
	Method    string
	Status    string
}
