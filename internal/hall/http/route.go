package http

import (
	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/halls")

	// Hall listings are readable without a session.
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, auth.RequireRoles(auth.RoleAdmin), h.Create)
	group.PUT("/:id", authMiddleware, auth.RequireRoles(auth.RoleAdmin, auth.RoleStaff), h.Update)
	group.DELETE("/:id", authMiddleware, auth.RequireRoles(auth.RoleAdmin), h.Delete)
}
