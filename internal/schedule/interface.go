package schedule

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Events on the schedule store
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	AddEvent(ctx context.Context, input AddEventInput) (EventOutput, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (EventOutput, error)
	RemoveEvent(ctx context.Context, id string) error

	// FindSlot proposes a free interval for a new activity without booking it.
	FindSlot(ctx context.Context, input FindSlotInput) (FindSlotOutput, error)
	// BookSlot finds a slot and materialises it as an event.
	BookSlot(ctx context.Context, input BookSlotInput) (BookSlotOutput, error)

	// SyncCalendar pulls a day of Google Calendar events into the store.
	SyncCalendar(ctx context.Context, input SyncCalendarInput) (SyncCalendarOutput, error)
	// ExportICS renders a day of events as an iCalendar document.
	ExportICS(ctx context.Context, input ExportICSInput) (ExportICSOutput, error)
}
