package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/hall"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/request"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

type Handler struct {
	service hall.Service
}

func NewHandler(service hall.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	halls, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, halls)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid hall ID", err.Error())
		return
	}
	if err := uri.Validate("hall"); err != nil {
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
	var body CreateHallRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), hall.CreateRequest{
		Name:      body.Name,
		BasePrice: body.BasePrice,
		Features:  body.Features,
		Available: body.Available,
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
		response.BadRequest(c, "Invalid hall ID", err.Error())
		return
	}
	if err := uri.Validate("hall"); err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateHallRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), uri.ID, hall.UpdateRequest{
		Name:      body.Name,
		BasePrice: body.BasePrice,
		Features:  body.Features,
		Available: body.Available,
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
		response.BadRequest(c, "Invalid hall ID", err.Error())
		return
	}
	if err := uri.Validate("hall"); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Hall deleted successfully")
}
