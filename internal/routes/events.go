package routes

import (
	"strategymint/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes sets up the event log read and the live websocket stream
func SetupEventRoutes(r *gin.Engine, h *handlers.EventHandler) {
	events := r.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/stream", h.StreamEvents)
	}
}
