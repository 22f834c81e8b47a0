package gcalendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	pkgGcal "schedule-assistant/pkg/gcalendar"
)

func (s *implSource) ListEvents(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	items, err := s.client.ListEvents(ctx, pkgGcal.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		s.l.Errorf(ctx, "gcalendar.ListEvents: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, model.Event{
			Title:       item.Summary,
			Description: item.Description,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			Category:    guessCategory(item.Summary),
			Source:      model.SourceGoogleCalendar,
			ExternalID:  item.ID,
		})
	}
	return events, nil
}

func (s *implSource) PushEvent(ctx context.Context, event model.Event) (repository.PushedEvent, error) {
	created, err := s.client.CreateEvent(ctx, pkgGcal.CreateEventRequest{
		CalendarID:  s.calendarID,
		Summary:     event.Title,
		Description: event.Description,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Timezone:    s.timezone,
	})
	if err != nil {
		s.l.Errorf(ctx, "gcalendar.PushEvent: %v", err)
		return repository.PushedEvent{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, err)
	}
	return repository.PushedEvent{ExternalID: created.ID, Link: created.HtmlLink}, nil
}

// guessCategory maps a Google event title onto a schedule category.
// Titles that match nothing are treated as work.
func guessCategory(title string) model.EventCategory {
	t := strings.ToLower(title)
	switch {
	case containsAny(t, "gym", "workout", "exercise", "yoga"):
		return model.CategoryGym
	case containsAny(t, "meeting", "call", "sync", "1:1", "standup"):
		return model.CategoryMeeting
	case containsAny(t, "break", "lunch", "coffee"):
		return model.CategoryBreak
	default:
		return model.CategoryWork
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
