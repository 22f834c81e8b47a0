package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/internal/schedule/repository/memory"
	"schedule-assistant/pkg/availability"
	"schedule-assistant/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock calendar source for testing
type mockCalendar struct {
	events  []model.Event
	listErr error
	pushErr error
	pushed  []model.Event
}

func (m *mockCalendar) ListEvents(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockCalendar) PushEvent(ctx context.Context, ev model.Event) (repository.PushedEvent, error) {
	if m.pushErr != nil {
		return repository.PushedEvent{}, m.pushErr
	}
	m.pushed = append(m.pushed, ev)
	return repository.PushedEvent{ExternalID: "gcal-" + ev.Title, Link: "https://calendar.google.com/e/" + ev.Title}, nil
}

var errUpstream = errors.New("upstream unavailable")

const testTimezone = "Asia/Ho_Chi_Minh"

// day is 2026-03-10 in the test timezone.
func clockAt(t *testing.T, hour, min int) time.Time {
	t.Helper()
	loc, err := datemath.LoadLocation(testTimezone)
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return time.Date(2026, 3, 10, hour, min, 0, 0, loc)
}

func event(t *testing.T, title string, startH, startM, endH, endM int) model.Event {
	t.Helper()
	return model.Event{
		Title:     title,
		StartTime: clockAt(t, startH, startM),
		EndTime:   clockAt(t, endH, endM),
		Category:  model.CategoryWork,
	}
}

// newTestUseCase wires a use case over an in-memory store seeded with events.
// calendar may be nil.
func newTestUseCase(t *testing.T, now time.Time, calendar repository.CalendarSource, seed ...model.Event) (*implUseCase, repository.Repository) {
	t.Helper()
	return newTestUseCaseWithOptions(t, availability.DefaultOptions(), now, calendar, seed...)
}

func newTestUseCaseWithOptions(t *testing.T, opts availability.Options, now time.Time, calendar repository.CalendarSource, seed ...model.Event) (*implUseCase, repository.Repository) {
	t.Helper()
	l := &mockLogger{}

	dates, err := datemath.NewParser(testTimezone)
	if err != nil {
		t.Fatalf("new parser: %v", err)
	}
	resolver, err := availability.New(opts)
	if err != nil {
		t.Fatalf("new resolver: %v", err)
	}
	repo := memory.New(l, seed...)
	return New(l, repo, calendar, resolver, dates, datemath.FixedClock(now)), repo
}
