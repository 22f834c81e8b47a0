package schedule

import (
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/pkg/availability"
)

// --- UseCase Inputs ---

// ListEventsInput selects a calendar day. Day accepts "today", "tomorrow",
// "in 3 days", "next friday" or 2006-01-02; empty means today.
type ListEventsInput struct {
	Day string
}

type AddEventInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Category    model.EventCategory
}

// UpdateEventInput is a partial update; nil fields keep their value.
type UpdateEventInput struct {
	ID          string
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Category    *model.EventCategory
	Completed   *bool
}

type FindSlotInput struct {
	DurationMinutes int
	// Category is a free-text hint such as "gym", "workout" or "call".
	Category string
}

type BookSlotInput struct {
	Title           string
	Description     string
	DurationMinutes int
	Category        string
}

type SyncCalendarInput struct {
	Day string
}

type ExportICSInput struct {
	Day string
}

// --- UseCase Outputs ---

type ListEventsOutput struct {
	Day    time.Time
	Events []model.Event
}

type EventOutput struct {
	Event model.Event
}

type FindSlotOutput struct {
	StartTime time.Time
	EndTime   time.Time
	Strategy  availability.Strategy
}

type BookSlotOutput struct {
	Event        model.Event
	Strategy     availability.Strategy
	CalendarLink string // Google Calendar deep link, empty when not pushed
}

type SyncCalendarOutput struct {
	Day      time.Time
	Imported int
}

type ExportICSOutput struct {
	Filename string
	Content  []byte
}
