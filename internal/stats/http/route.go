package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the stats endpoint on the given router group.
// Any authenticated session may read the dashboard summary.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/stats")
	group.Use(authMiddleware)
	group.GET("", h.Summary)
}
