package gcalendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	pkgGcal "schedule-assistant/pkg/gcalendar"
	"schedule-assistant/pkg/log"
)

type mockClient struct {
	events    []pkgGcal.Event
	listErr   error
	created   *pkgGcal.Event
	createErr error

	lastList   pkgGcal.ListEventsRequest
	lastCreate pkgGcal.CreateEventRequest
}

func (m *mockClient) ListEvents(ctx context.Context, req pkgGcal.ListEventsRequest) ([]pkgGcal.Event, error) {
	m.lastList = req
	return m.events, m.listErr
}

func (m *mockClient) CreateEvent(ctx context.Context, req pkgGcal.CreateEventRequest) (*pkgGcal.Event, error) {
	m.lastCreate = req
	return m.created, m.createErr
}

func TestListEvents(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	client := &mockClient{events: []pkgGcal.Event{
		{ID: "g-1", Summary: "Team Meeting", StartTime: start, EndTime: start.Add(time.Hour)},
		{ID: "g-2", Summary: "Morning Workout", StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour)},
		{ID: "g-3", Summary: "Write report", StartTime: start.Add(4 * time.Hour), EndTime: start.Add(5 * time.Hour)},
	}}
	src := New(client, "work-calendar", "UTC", log.NewNop())

	events, err := src.ListEvents(context.Background(), start, start.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.lastList.CalendarID != "work-calendar" {
		t.Errorf("calendar id not forwarded: %q", client.lastList.CalendarID)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	wantCategories := []model.EventCategory{model.CategoryMeeting, model.CategoryGym, model.CategoryWork}
	for i, ev := range events {
		if ev.Category != wantCategories[i] {
			t.Errorf("event %d: category %q, want %q", i, ev.Category, wantCategories[i])
		}
		if ev.Source != model.SourceGoogleCalendar {
			t.Errorf("event %d: source %q", i, ev.Source)
		}
	}
	if events[0].ExternalID != "g-1" {
		t.Errorf("external id not kept: %q", events[0].ExternalID)
	}
}

func TestListEventsError(t *testing.T) {
	src := New(&mockClient{listErr: errors.New("quota")}, "", "UTC", log.NewNop())
	_, err := src.ListEvents(context.Background(), time.Now(), time.Now().Add(time.Hour))
	if !errors.Is(err, repository.ErrFailedToList) {
		t.Fatalf("expected ErrFailedToList, got %v", err)
	}
}

func TestPushEvent(t *testing.T) {
	client := &mockClient{created: &pkgGcal.Event{ID: "g-9", HtmlLink: "https://calendar.google.com/e/g-9"}}
	src := New(client, "primary", "Asia/Ho_Chi_Minh", log.NewNop())

	start := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	pushed, err := src.PushEvent(context.Background(), model.Event{Title: "Gym", StartTime: start, EndTime: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pushed.ExternalID != "g-9" || pushed.Link == "" {
		t.Errorf("unexpected pushed event: %+v", pushed)
	}
	if client.lastCreate.Timezone != "Asia/Ho_Chi_Minh" || client.lastCreate.Summary != "Gym" {
		t.Errorf("unexpected create request: %+v", client.lastCreate)
	}

	client.createErr = errors.New("forbidden")
	if _, err := src.PushEvent(context.Background(), model.Event{Title: "Gym"}); !errors.Is(err, repository.ErrFailedToInsert) {
		t.Fatalf("expected ErrFailedToInsert, got %v", err)
	}
}
