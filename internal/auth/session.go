package auth

import (
	"net/http"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

// Session is the authenticated identity extracted from a request token.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// ErrUnauthorized covers both a missing session and an insufficient role.
// The API deliberately answers 401 for either case.
var ErrUnauthorized = apperror.New(http.StatusUnauthorized, "Unauthorized")

// Authorize is the single policy decision for role-gated operations.
// A nil session (unauthenticated request) is always denied. With no required
// roles, any authenticated session is allowed.
func Authorize(sess *Session, required ...Role) error {
	if sess == nil {
		return ErrUnauthorized
	}
	if len(required) == 0 {
		return nil
	}
	for _, r := range required {
		if sess.Role == r {
			return nil
		}
	}
	return ErrUnauthorized
}
