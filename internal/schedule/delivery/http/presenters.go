package http

import (
	"strings"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/availability"
	"schedule-assistant/pkg/response"
)

// --- Request DTOs ---

type dayReq struct {
	Day string `form:"day"`
}

// ---

type addEventReq struct {
	Title       string    `json:"title"       binding:"required,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"    binding:"required"`
	Category    string    `json:"category"`
}

func (r addEventReq) validate() error {
	if !r.StartTime.Before(r.EndTime) {
		return errTimeRange
	}
	return nil
}

func (r addEventReq) toInput() schedule.AddEventInput {
	return schedule.AddEventInput{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Category:    model.EventCategory(strings.ToLower(r.Category)),
	}
}

// ---

type updateEventReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Category    *string    `json:"category"`
	Completed   *bool      `json:"completed"`
}

func (r updateEventReq) validate() error {
	if r.Title == nil && r.Description == nil && r.StartTime == nil &&
		r.EndTime == nil && r.Category == nil && r.Completed == nil {
		return errEmptyUpdate
	}
	if r.StartTime != nil && r.EndTime != nil && !r.StartTime.Before(*r.EndTime) {
		return errTimeRange
	}
	return nil
}

func (r updateEventReq) toInput() schedule.UpdateEventInput {
	in := schedule.UpdateEventInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Completed:   r.Completed,
	}
	if r.Category != nil {
		c := model.EventCategory(strings.ToLower(*r.Category))
		in.Category = &c
	}
	return in
}

// ---

type findSlotReq struct {
	Duration int    `form:"duration"`
	Category string `form:"category"`
}

func (r findSlotReq) toInput() schedule.FindSlotInput {
	return schedule.FindSlotInput{
		DurationMinutes: r.Duration,
		Category:        r.Category,
	}
}

// ---

type bookSlotReq struct {
	Title           string `json:"title"            binding:"required,max=255"`
	Description     string `json:"description"      binding:"max=2000"`
	DurationMinutes int    `json:"duration_minutes"`
	Category        string `json:"category"`
}

func (r bookSlotReq) toInput() schedule.BookSlotInput {
	return schedule.BookSlotInput{
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Category    string    `json:"category"`
	Completed   bool      `json:"completed"`
	Source      string    `json:"source"`
	ExternalID  string    `json:"external_id,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Category:    string(ev.Category),
		Completed:   ev.Completed,
		Source:      string(ev.Source),
		ExternalID:  ev.ExternalID,
	}
}

type listEventsResp struct {
	Day    response.Date `json:"day"`
	Events []eventResp   `json:"events"`
}

func (h *handler) newListEventsResp(out schedule.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listEventsResp{Day: response.Date(out.Day), Events: events}
}

type eventDetailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newEventDetailResp(out schedule.EventOutput) eventDetailResp {
	return eventDetailResp{Event: newEventResp(out.Event)}
}

type slotResp struct {
	StartTime       time.Time             `json:"start_time"`
	EndTime         time.Time             `json:"end_time"`
	DurationMinutes int                   `json:"duration_minutes"`
	Strategy        availability.Strategy `json:"strategy"`
}

func (h *handler) newSlotResp(out schedule.FindSlotOutput) slotResp {
	return slotResp{
		StartTime:       out.StartTime,
		EndTime:         out.EndTime,
		DurationMinutes: int(out.EndTime.Sub(out.StartTime).Minutes()),
		Strategy:        out.Strategy,
	}
}

type bookSlotResp struct {
	Event        eventResp             `json:"event"`
	Strategy     availability.Strategy `json:"strategy"`
	CalendarLink string                `json:"calendar_link,omitempty"`
}

func (h *handler) newBookSlotResp(out schedule.BookSlotOutput) bookSlotResp {
	return bookSlotResp{
		Event:        newEventResp(out.Event),
		Strategy:     out.Strategy,
		CalendarLink: out.CalendarLink,
	}
}

type syncResp struct {
	Day      response.Date `json:"day"`
	Imported int           `json:"imported"`
}

func (h *handler) newSyncResp(out schedule.SyncCalendarOutput) syncResp {
	return syncResp{Day: response.Date(out.Day), Imported: out.Imported}
}
