package hall

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "Hall not found")
	ErrNameTaken = apperror.New(http.StatusBadRequest, "A hall with this name already exists")
)

// Hall is a bookable venue. BasePrice is the price of the morning slot.
type Hall struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	BasePrice float64            `bson:"basePrice" json:"basePrice"`
	Features  []string           `bson:"features" json:"features"`
	Available bool               `bson:"available" json:"available"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
