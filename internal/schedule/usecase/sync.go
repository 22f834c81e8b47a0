package usecase

import (
	"context"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	repo "schedule-assistant/internal/schedule/repository"
)

// SyncCalendar replaces the store's Google Calendar events for one day with
// what the calendar currently holds. Local events are left alone.
func (uc *implUseCase) SyncCalendar(ctx context.Context, input schedule.SyncCalendarInput) (schedule.SyncCalendarOutput, error) {
	if uc.calendar == nil {
		return schedule.SyncCalendarOutput{}, schedule.ErrCalendarNotConfigured
	}

	from, to, err := uc.resolveDay(input.Day)
	if err != nil {
		return schedule.SyncCalendarOutput{}, err
	}

	remote, err := uc.calendar.ListEvents(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncCalendar ListEvents: %v", err)
		return schedule.SyncCalendarOutput{}, err
	}

	opts := make([]repo.CreateEventOptions, 0, len(remote))
	for _, ev := range remote {
		opts = append(opts, repo.CreateEventOptions{
			Title:       ev.Title,
			Description: ev.Description,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			Category:    ev.Category,
			ExternalID:  ev.ExternalID,
		})
	}

	n, err := uc.repo.ReplaceRange(ctx, repo.ReplaceRangeOptions{
		Source: model.SourceGoogleCalendar,
		From:   from,
		To:     to,
		Events: opts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SyncCalendar ReplaceRange: %v", err)
		return schedule.SyncCalendarOutput{}, err
	}

	uc.l.Infof(ctx, "uc.SyncCalendar: imported %d events for %s", n, from.Format("2006-01-02"))
	return schedule.SyncCalendarOutput{Day: from, Imported: n}, nil
}
