package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/customer"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/request"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

type Handler struct {
	service customer.Service
}

func NewHandler(service customer.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid customer ID", err.Error())
		return
	}
	if err := uri.Validate("customer"); err != nil {
		response.Error(c, err)
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCustomerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), customer.CreateRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid customer ID", err.Error())
		return
	}
	if err := uri.Validate("customer"); err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateCustomerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, customer.UpdateRequest{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid customer ID", err.Error())
		return
	}
	if err := uri.Validate("customer"); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Customer deleted successfully")
}
