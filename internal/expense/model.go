package expense

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "Expense not found")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "Invalid expense category")
)

type Category string

const (
	CategoryDecor    Category = "decor"
	CategoryCatering Category = "catering"
	CategoryLabor    Category = "labor"
	CategoryMisc     Category = "misc"
)

// ValidCategory reports whether s is a known expense category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryDecor, CategoryCatering, CategoryLabor, CategoryMisc:
		return true
	}
	return false
}

// Expense is money spent, optionally tied to a booking.
// CreatedBy records the name of the staff member who logged it.
type Expense struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	BookingID   *primitive.ObjectID `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Description string              `bson:"description" json:"description"`
	Amount      float64             `bson:"amount" json:"amount"`
	Category    Category            `bson:"category" json:"category"`
	Date        time.Time           `bson:"date" json:"date"`
	CreatedBy   string              `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Filter defines filter options for listing expenses.
type Filter struct {
	BookingID string
	Category  string
}
