package http

import (
	"preference-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the display endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/mode", mw.RateLimit(), h.Resolve)
}
