package usecase

import (
	"context"
	"fmt"
	"time"

	"schedule-assistant/internal/schedule"
	repo "schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/availability"
)

// FindSlot proposes an open interval of the requested length.
func (uc *implUseCase) FindSlot(ctx context.Context, input schedule.FindSlotInput) (schedule.FindSlotOutput, error) {
	res, err := uc.findSlot(ctx, input.DurationMinutes, input.Category)
	if err != nil {
		return schedule.FindSlotOutput{}, err
	}
	return schedule.FindSlotOutput{
		StartTime: res.Slot.Start,
		EndTime:   res.Slot.End,
		Strategy:  res.Strategy,
	}, nil
}

// findSlot snapshots today and tomorrow from the store and runs the resolver.
func (uc *implUseCase) findSlot(ctx context.Context, minutes int, category string) (availability.Result, error) {
	if minutes <= 0 {
		return availability.Result{}, schedule.ErrInvalidDuration
	}

	now := uc.now()
	dayStart, _ := uc.dates.DayRange(now)
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		From: dayStart,
		To:   dayStart.AddDate(0, 0, 2),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindSlot ListEvents: %v", err)
		return availability.Result{}, err
	}

	req := availability.Request{
		DurationMinutes: minutes,
		Category:        availability.ParseCategory(category),
	}
	res := uc.resolver.FindSlot(toIntervals(events), req, now)

	switch res.Kind {
	case availability.KindFound:
		uc.l.Debugf(ctx, "uc.FindSlot: %dmin %q -> %s-%s via %s",
			minutes, category, res.Slot.Start.Format(time.RFC3339), res.Slot.End.Format(time.RFC3339), res.Strategy)
		return res, nil
	case availability.KindInvalid:
		return availability.Result{}, schedule.ErrInvalidDuration
	case availability.KindNotFound:
		return availability.Result{}, schedule.ErrNoSlot
	default:
		uc.l.Errorf(ctx, "uc.FindSlot resolver: %v", res.Err)
		return availability.Result{}, fmt.Errorf("%w: %w", schedule.ErrSlotSearchFailed, res.Err)
	}
}
