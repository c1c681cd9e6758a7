package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

const sessionKey = "session"

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
// and stores the resulting session in the request context.
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, ErrUnauthorized)
			c.Abort()
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			response.Error(c, ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(sessionKey, &Session{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   Role(claims.Role),
		})

		c.Next()
	}
}

// RequireRoles gates a route on Authorize. It MUST be used after AuthRequired.
// Denials answer 401, matching the rest of the auth surface.
func RequireRoles(required ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(GetSession(c), required...); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the authenticated session or nil.
func GetSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	if s := GetSession(c); s != nil {
		return s.UserID
	}
	return ""
}
