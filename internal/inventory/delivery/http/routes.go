package http

import (
	"preference-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	inventories := rg.Group("/inventories", mw.RateLimit())
	{
		inventories.POST("", h.Create)
		inventories.GET("", h.List)
		inventories.GET("/:id", h.Detail)
		inventories.DELETE("/:id", h.Delete)
		inventories.POST("/:id/stock", h.Stock)
		inventories.GET("/:id/giveaway", h.Giveaway)
	}
}
