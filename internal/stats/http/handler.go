package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
	"github.com/venuedesk/hall-booking-backend/internal/stats"
)

// SummaryRequest defines query parameters for the stats endpoint. Both
// dates are optional; when omitted the current calendar month is used.
type SummaryRequest struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

type Handler struct {
	service stats.Service
}

func NewHandler(service stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	var query SummaryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	var start, end time.Time
	var err error
	if query.StartDate != "" {
		if start, err = parseDate(query.StartDate); err != nil {
			response.BadRequest(c, "Invalid start date", err.Error())
			return
		}
	}
	if query.EndDate != "" {
		if end, err = parseDate(query.EndDate); err != nil {
			response.BadRequest(c, "Invalid end date", err.Error())
			return
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		response.BadRequest(c, "End date must not precede start date", "")
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
