package http

import (
	"github.com/gin-gonic/gin"

	"schedule-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every route is
// rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.POST("", h.AddEvent)
		events.PATCH("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.RemoveEvent)
	}
	rg.GET("/events.ics", h.ExportICS)

	slots := rg.Group("/slots")
	{
		slots.GET("", h.FindSlot)
		slots.POST("/book", h.BookSlot)
	}

	rg.POST("/sync", h.SyncCalendar)
}
