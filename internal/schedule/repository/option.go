package repository

import (
	"time"

	"schedule-assistant/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Category    model.EventCategory
	Completed   bool
	Source      model.EventSource
	ExternalID  string
}

// ListEventsOptions filters events to those overlapping [From, To).
// A zero bound is open.
type ListEventsOptions struct {
	From time.Time
	To   time.Time
}

// UpdateEventOptions replaces the mutable fields of an existing Event.
type UpdateEventOptions struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Category    model.EventCategory
	Completed   bool
	ExternalID  string
}

// ReplaceRangeOptions drops every event from Source that overlaps
// [From, To) and inserts Events in their place. Events whose ExternalID
// already belongs to an event of another source are skipped.
type ReplaceRangeOptions struct {
	Source model.EventSource
	From   time.Time
	To     time.Time
	Events []CreateEventOptions
}

// PushedEvent identifies an event written to an external calendar.
type PushedEvent struct {
	ExternalID string
	Link       string
}
