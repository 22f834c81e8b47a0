package repository

import (
	"context"
	"time"

	"schedule-assistant/internal/model"
)

// Repository is the composed interface for the schedule store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Implementations hand out copies; callers never share memory with the store.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, id string) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ReplaceRange(ctx context.Context, opt ReplaceRangeOptions) (int, error)
}

// CalendarSource is an external calendar that events can be pulled from and
// pushed to.
type CalendarSource interface {
	ListEvents(ctx context.Context, from, to time.Time) ([]model.Event, error)
	PushEvent(ctx context.Context, event model.Event) (PushedEvent, error)
}
