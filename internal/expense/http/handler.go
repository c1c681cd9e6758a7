package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/expense"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/request"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

type Handler struct {
	service expense.Service
}

func NewHandler(service expense.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var query ListExpensesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	expenses, err := h.service.List(c.Request.Context(), expense.Filter{
		BookingID: query.BookingID,
		Category:  query.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid expense ID", err.Error())
		return
	}
	if err := uri.Validate("expense"); err != nil {
		response.Error(c, err)
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateExpenseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	e, err := h.service.Create(c.Request.Context(), expense.CreateRequest{
		BookingID:   body.BookingID,
		Description: body.Description,
		Amount:      body.Amount,
		Category:    body.Category,
		Date:        body.Date,
		CreatedBy:   body.CreatedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid expense ID", err.Error())
		return
	}
	if err := uri.Validate("expense"); err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateExpenseRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	e, err := h.service.Update(c.Request.Context(), uri.ID, expense.UpdateRequest{
		BookingID:    body.BookingID,
		ClearBooking: body.ClearBooking,
		Description:  body.Description,
		Amount:       body.Amount,
		Category:     body.Category,
		Date:         body.Date,
		CreatedBy:    body.CreatedBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid expense ID", err.Error())
		return
	}
	if err := uri.Validate("expense"); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Expense deleted successfully")
}
