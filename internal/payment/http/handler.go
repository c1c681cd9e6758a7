package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/payment"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/request"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

type Handler struct {
	service payment.Service
}

func NewHandler(service payment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var query ListPaymentsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	payments, err := h.service.List(c.Request.Context(), payment.Filter{
		BookingID: query.BookingID,
		Method:    query.Method,
		Status:    query.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid payment ID", err.Error())
		return
	}
	if err := uri.Validate("payment"); err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var body RecordPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), payment.RecordRequest{
		BookingID:   body.BookingID,
		Amount:      body.Amount,
		Method:      body.Method,
		PaymentDate: body.PaymentDate,
		Status:      body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid payment ID", err.Error())
		return
	}
	if err := uri.Validate("payment"); err != nil {
		response.Error(c, err)
		return
	}

	var body UpdatePaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, payment.UpdateRequest{
		Amount:      body.Amount,
		Method:      body.Method,
		PaymentDate: body.PaymentDate,
		Status:      body.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid payment ID", err.Error())
		return
	}
	if err := uri.Validate("payment"); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Payment deleted successfully")
}
