package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/booking"
	"github.com/venuedesk/hall-booking-backend/internal/customer"
	custHttp "github.com/venuedesk/hall-booking-backend/internal/customer/http"
	"github.com/venuedesk/hall-booking-backend/internal/hall"
	hallHttp "github.com/venuedesk/hall-booking-backend/internal/hall/http"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/request"
	"github.com/venuedesk/hall-booking-backend/internal/pkg/response"
)

type Handler struct {
	service         booking.Service
	hallService     hall.Service
	customerService customer.Service
}

func NewHandler(service booking.Service, hallService hall.Service, customerService customer.Service) *Handler {
	return &Handler{
		service:         service,
		hallService:     hallService,
		customerService: customerService,
	}
}

// tags resolves the hall and customer tags for a single booking.
// Dangling references render as empty tags rather than failing the read.
func (h *Handler) tags(c *gin.Context, b *booking.Booking) (hallHttp.HallTag, custHttp.CustomerTag) {
	ctx := c.Request.Context()

	hallTag := hallHttp.HallTag{ID: b.HallID.Hex()}
	if hl, err := h.hallService.GetByID(ctx, b.HallID.Hex()); err == nil {
		hallTag = hallHttp.NewHallTag(hl)
	}

	custTag := custHttp.CustomerTag{ID: b.CustomerID.Hex()}
	if cu, err := h.customerService.GetByID(ctx, b.CustomerID.Hex()); err == nil {
		custTag = custHttp.NewCustomerTag(cu)
	}

	return hallTag, custTag
}

func (h *Handler) List(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err.Error())
		return
	}

	ctx := c.Request.Context()

	bookings, err := h.service.List(ctx, booking.Filter{
		HallID:     query.HallID,
		CustomerID: query.CustomerID,
		Status:     query.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// One pass over halls and customers instead of a lookup per booking.
	hallTags := map[string]hallHttp.HallTag{}
	if halls, err := h.hallService.List(ctx); err == nil {
		for _, hl := range halls {
			hallTags[hl.ID.Hex()] = hallHttp.NewHallTag(hl)
		}
	}
	custTags := map[string]custHttp.CustomerTag{}
	if customers, err := h.customerService.List(ctx); err == nil {
		for _, cu := range customers {
			custTags[cu.ID.Hex()] = custHttp.NewCustomerTag(cu)
		}
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		hallTag, ok := hallTags[b.HallID.Hex()]
		if !ok {
			hallTag = hallHttp.HallTag{ID: b.HallID.Hex()}
		}
		custTag, ok := custTags[b.CustomerID.Hex()]
		if !ok {
			custTag = custHttp.CustomerTag{ID: b.CustomerID.Hex()}
		}
		items[i] = newBookingResponse(b, hallTag, custTag)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid booking ID", err.Error())
		return
	}
	if err := uri.Validate("booking"); err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	hallTag, custTag := h.tags(c, b)
	c.JSON(http.StatusOK, newBookingResponse(b, hallTag, custTag))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		HallID:         body.HallID,
		CustomerID:     body.CustomerID,
		Date:           date,
		TimeSlot:       body.TimeSlot,
		TotalCost:      body.TotalCost,
		AdvanceAmount:  body.AdvanceAmount,
		Status:         body.Status,
		AttendeesCount: body.AttendeesCount,
		CateringMenu:   body.CateringMenu,
		Notes:          body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	hallTag, custTag := h.tags(c, b)
	c.JSON(http.StatusCreated, newBookingResponse(b, hallTag, custTag))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid booking ID", err.Error())
		return
	}
	if err := uri.Validate("booking"); err != nil {
		response.Error(c, err)
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "Invalid request body", err.Error())
		return
	}

	req := booking.UpdateRequest{
		HallID:         body.HallID,
		CustomerID:     body.CustomerID,
		TimeSlot:       body.TimeSlot,
		TotalCost:      body.TotalCost,
		AdvanceAmount:  body.AdvanceAmount,
		Status:         body.Status,
		AttendeesCount: body.AttendeesCount,
		CateringMenu:   body.CateringMenu,
		Notes:          body.Notes,
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			response.Error(c, err)
			return
		}
		req.Date = &date
	}

	b, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	hallTag, custTag := h.tags(c, b)
	c.JSON(http.StatusOK, newBookingResponse(b, hallTag, custTag))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid booking ID", err.Error())
		return
	}
	if err := uri.Validate("booking"); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Booking deleted successfully")
}
