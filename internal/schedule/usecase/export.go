package usecase

import (
	"context"
	"fmt"

	ical "github.com/arran4/golang-ical"

	"schedule-assistant/internal/schedule"
	repo "schedule-assistant/internal/schedule/repository"
)

const icsProductID = "-//schedule-assistant//schedule//EN"

// ExportICS renders one day of the schedule as an iCalendar document so it
// can be imported into a device calendar.
func (uc *implUseCase) ExportICS(ctx context.Context, input schedule.ExportICSInput) (schedule.ExportICSOutput, error) {
	from, to, err := uc.resolveDay(input.Day)
	if err != nil {
		return schedule.ExportICSOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS ListEvents: %v", err)
		return schedule.ExportICSOutput{}, err
	}

	stamp := uc.now()
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, ev := range events {
		vev := cal.AddEvent(ev.ID)
		vev.SetDtStampTime(stamp)
		vev.SetStartAt(ev.StartTime)
		vev.SetEndAt(ev.EndTime)
		vev.SetSummary(ev.Title)
		if ev.Description != "" {
			vev.SetDescription(ev.Description)
		}
		vev.AddProperty(ical.ComponentPropertyCategories, string(ev.Category))
		if ev.Completed {
			vev.SetStatus(ical.ObjectStatusCompleted)
		}
	}

	return schedule.ExportICSOutput{
		Filename: fmt.Sprintf("schedule-%s.ics", from.Format("2006-01-02")),
		Content:  []byte(cal.Serialize()),
	}, nil
}
