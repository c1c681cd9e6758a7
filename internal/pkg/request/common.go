package request

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required"`
}

// Validate checks that the ID is a well-formed ObjectID.
func (r *ByIDRequest) Validate(resource string) error {
	if _, err := primitive.ObjectIDFromHex(r.ID); err != nil {
		return apperror.New(http.StatusBadRequest, "Invalid "+resource+" ID")
	}
	return nil
}
