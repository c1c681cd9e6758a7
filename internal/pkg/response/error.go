package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Message: appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}

// BadRequest sends a 400 with a message and the validation detail.
func BadRequest(c *gin.Context, message, detail string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: message, Error: detail})
}

// Message sends a plain `{message}` body with the given status code.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}
