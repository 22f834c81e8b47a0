package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	scheduleHTTP "schedule-assistant/internal/schedule/delivery/http"
)

// setupScheduleDomain registers /api/v1/schedule.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, srv.mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
