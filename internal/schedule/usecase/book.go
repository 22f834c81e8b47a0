package usecase

import (
	"context"
	"strings"

	"schedule-assistant/internal/schedule"
	repo "schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/availability"
)

// BookSlot finds a slot and stores it as a new event. When Google Calendar is
// configured the event is pushed there too; a failed push is logged and the
// local booking stands.
func (uc *implUseCase) BookSlot(ctx context.Context, input schedule.BookSlotInput) (schedule.BookSlotOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return schedule.BookSlotOutput{}, schedule.ErrInvalidEvent
	}

	uc.bookMu.Lock()
	defer uc.bookMu.Unlock()

	res, err := uc.findSlot(ctx, input.DurationMinutes, input.Category)
	if err != nil {
		return schedule.BookSlotOutput{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title:       title,
		Description: input.Description,
		StartTime:   res.Slot.Start,
		EndTime:     res.Slot.End,
		Category:    eventCategory(input.Category, availability.ParseCategory(input.Category)),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookSlot CreateEvent: %v", err)
		return schedule.BookSlotOutput{}, err
	}

	out := schedule.BookSlotOutput{Event: ev, Strategy: res.Strategy}
	if uc.calendar == nil {
		return out, nil
	}

	pushed, err := uc.calendar.PushEvent(ctx, ev)
	if err != nil {
		uc.l.Warnf(ctx, "uc.BookSlot PushEvent: %v", err)
		return out, nil
	}

	updated, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Category:    ev.Category,
		Completed:   ev.Completed,
		ExternalID:  pushed.ExternalID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.BookSlot UpdateEvent: %v", err)
	} else {
		out.Event = updated
	}
	out.CalendarLink = pushed.Link
	return out, nil
}
