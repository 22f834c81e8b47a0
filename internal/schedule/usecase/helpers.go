package usecase

import (
	"fmt"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/availability"
)

// now reads the injected clock in the scheduler's timezone.
func (uc *implUseCase) now() time.Time {
	return uc.clock.Now().In(uc.dates.Location())
}

// resolveDay turns a day reference into [start, end) of that day.
func (uc *implUseCase) resolveDay(day string) (time.Time, time.Time, error) {
	t, err := uc.dates.ParseDay(day, uc.now())
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %w", schedule.ErrInvalidDay, err)
	}
	start, end := uc.dates.DayRange(t)
	return start, end, nil
}

func toIntervals(events []model.Event) []availability.Interval {
	out := make([]availability.Interval, 0, len(events))
	for _, ev := range events {
		out = append(out, availability.Interval{Start: ev.StartTime, End: ev.EndTime})
	}
	return out
}

// eventCategory picks the stored category for a booked slot.
func eventCategory(hint string, c availability.Category) model.EventCategory {
	switch c {
	case availability.CategoryGym:
		return model.CategoryGym
	case availability.CategoryMeeting:
		return model.CategoryMeeting
	case availability.CategoryWork:
		return model.CategoryWork
	}
	if mc := model.EventCategory(hint); mc.IsValid() {
		return mc
	}
	return model.CategoryWork
}

func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}
