package gcalendar

import (
	"context"

	"schedule-assistant/internal/schedule/repository"
	pkgGcal "schedule-assistant/pkg/gcalendar"
	"schedule-assistant/pkg/log"
)

// Client is the subset of pkg/gcalendar used here; swap in a fake for tests.
type Client interface {
	ListEvents(ctx context.Context, req pkgGcal.ListEventsRequest) ([]pkgGcal.Event, error)
	CreateEvent(ctx context.Context, req pkgGcal.CreateEventRequest) (*pkgGcal.Event, error)
}

type implSource struct {
	client     Client
	calendarID string
	timezone   string
	l          log.Logger
}

// New creates a CalendarSource backed by Google Calendar.
func New(client Client, calendarID, timezone string, l log.Logger) repository.CalendarSource {
	if client == nil {
		panic("schedule/repository/gcalendar: client is required")
	}
	return &implSource{
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}
