package http

import (
	"github.com/gin-gonic/gin"

	"github.com/venuedesk/hall-booking-backend/internal/auth"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/auth")

	group.POST("/login", h.Login)

	group.POST("/register", authMiddleware, auth.RequireRoles(auth.RoleAdmin), h.Register)
	group.GET("/me", authMiddleware, h.Me)
}
