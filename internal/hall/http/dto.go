package http

import "github.com/venuedesk/hall-booking-backend/internal/hall"

type CreateHallRequest struct {
	Name      string   `json:"name" binding:"required"`
	BasePrice float64  `json:"basePrice" binding:"required,gt=0"`
	Features  []string `json:"features"`
	Available *bool    `json:"available"`
}

type UpdateHallRequest struct {
	Name      *string   `json:"name"`
	BasePrice *float64  `json:"basePrice" binding:"omitempty,gt=0"`
	Features  *[]string `json:"features"`
	Available *bool     `json:"available"`
}

// HallTag is the minimal hall info embedded in other responses.
type HallTag struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

func NewHallTag(h *hall.Hall) HallTag {
	return HallTag{ID: h.ID.Hex(), Name: h.Name, BasePrice: h.BasePrice}
}
