package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/availability"
)

func TestBookSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("Local only", func(t *testing.T) {
		uc, repo := newTestUseCase(t, clockAt(t, 9, 15), nil, event(t, "Standup", 9, 0, 10, 0))

		out, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Focus", DurationMinutes: 60, Category: "focus"})
		require.NoError(t, err)
		// The work window is partly taken, so the scan places it after standup.
		assert.Equal(t, availability.StrategyFirstFit, out.Strategy)
		assert.Equal(t, model.CategoryWork, out.Event.Category)
		assert.True(t, out.Event.StartTime.Equal(clockAt(t, 10, 0)))
		assert.Empty(t, out.CalendarLink)

		events, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("Consecutive bookings never overlap", func(t *testing.T) {
		uc, repo := newTestUseCase(t, clockAt(t, 9, 15), nil)

		for i := 0; i < 5; i++ {
			_, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Block", DurationMinutes: 45})
			require.NoError(t, err)
		}

		events, err := repo.ListEvents(ctx, repository.ListEventsOptions{})
		require.NoError(t, err)
		require.Len(t, events, 5)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i].StartTime.Before(events[i-1].EndTime),
				"%v overlaps %v", events[i], events[i-1])
		}
	})

	t.Run("Pushes to calendar", func(t *testing.T) {
		cal := &mockCalendar{}
		uc, repo := newTestUseCase(t, clockAt(t, 9, 15), cal)

		out, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Lift", DurationMinutes: 60, Category: "gym"})
		require.NoError(t, err)
		require.Len(t, cal.pushed, 1)
		assert.Equal(t, "gcal-Lift", out.Event.ExternalID)
		assert.Equal(t, "https://calendar.google.com/e/Lift", out.CalendarLink)
		assert.Equal(t, model.CategoryGym, out.Event.Category)

		stored, err := repo.GetOneEvent(ctx, out.Event.ID)
		require.NoError(t, err)
		assert.Equal(t, "gcal-Lift", stored.ExternalID)
	})

	t.Run("Push failure keeps the booking", func(t *testing.T) {
		cal := &mockCalendar{pushErr: errUpstream}
		uc, repo := newTestUseCase(t, clockAt(t, 9, 15), cal)

		out, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Call", DurationMinutes: 30, Category: "call"})
		require.NoError(t, err)
		assert.Empty(t, out.Event.ExternalID)
		assert.Empty(t, out.CalendarLink)

		stored, err := repo.GetOneEvent(ctx, out.Event.ID)
		require.NoError(t, err)
		assert.Equal(t, "Call", stored.Title)
	})

	t.Run("Category hint kept when no window applies", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clockAt(t, 9, 15), nil)

		out, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Coffee", DurationMinutes: 15, Category: "break"})
		require.NoError(t, err)
		assert.Equal(t, model.CategoryBreak, out.Event.Category)
		assert.Equal(t, availability.StrategyFirstFit, out.Strategy)
	})

	t.Run("Validation", func(t *testing.T) {
		uc, _ := newTestUseCase(t, clockAt(t, 9, 15), nil)

		_, err := uc.BookSlot(ctx, schedule.BookSlotInput{Title: " ", DurationMinutes: 30})
		assert.ErrorIs(t, err, schedule.ErrInvalidEvent)

		_, err = uc.BookSlot(ctx, schedule.BookSlotInput{Title: "Zero", DurationMinutes: 0})
		assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
	})
}
