package http

import (
	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/payments")
	group.Use(authMiddleware)

	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", auth.RequireRoles(auth.RoleAdmin, auth.RoleStaff), h.Create)
	group.PUT("/:id", auth.RequireRoles(auth.RoleAdmin), h.Update)
	group.DELETE("/:id", auth.RequireRoles(auth.RoleAdmin), h.Delete)
}
