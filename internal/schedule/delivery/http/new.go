package http

import (
	"github.com/gin-gonic/gin"

	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	ListEvents(c *gin.Context)
	AddEvent(c *gin.Context)
	UpdateEvent(c *gin.Context)
	RemoveEvent(c *gin.Context)
	FindSlot(c *gin.Context)
	BookSlot(c *gin.Context)
	SyncCalendar(c *gin.Context)
	ExportICS(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
