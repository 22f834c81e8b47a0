package model

import "time"

// EventCategory is the kind of activity an event represents.
type EventCategory string

const (
	CategoryWork    EventCategory = "work"
	CategoryBreak   EventCategory = "break"
	CategoryMeeting EventCategory = "meeting"
	CategoryGym     EventCategory = "gym"
)

// IsValid reports whether c is one of the known categories.
func (c EventCategory) IsValid() bool {
	switch c {
	case CategoryWork, CategoryBreak, CategoryMeeting, CategoryGym:
		return true
	}
	return false
}

// EventSource records where an event came from.
type EventSource string

const (
	SourceLocal          EventSource = "local"
	SourceGoogleCalendar EventSource = "google_calendar"
)

// Event is a single booked interval on the schedule.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Category    EventCategory
	Completed   bool

	Source     EventSource
	ExternalID string // Google Calendar event ID when Source is google_calendar
}

// IsWellFormed reports whether both ends are set and StartTime < EndTime.
func (e Event) IsWellFormed() bool {
	return !e.StartTime.IsZero() && !e.EndTime.IsZero() && e.StartTime.Before(e.EndTime)
}
