package http

import (
	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Calls that may reach the text generator are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	messages := rg.Group("/sessions/:session_id/messages")
	{
		messages.POST("", mw.RateLimit(), h.SendMessage)
		messages.GET("", h.ListMessages)
		messages.DELETE("", h.ClearMessages)
	}

	rg.GET("/actions", h.ListActions)
	rg.POST("/classify", mw.RateLimit(), h.Classify)
}
