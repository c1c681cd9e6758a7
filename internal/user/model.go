package user

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "User not found")
	ErrEmailTaken         = apperror.New(http.StatusBadRequest, "A user with this email already exists")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid email or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "Invalid user role")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "Password must be at least 6 characters long")
)

// User is a staff account. The password hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         auth.Role          `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
