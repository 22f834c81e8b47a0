package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
)

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	tomorrow := event(t, "Dentist", 14, 0, 15, 0)
	tomorrow.StartTime = tomorrow.StartTime.AddDate(0, 0, 1)
	tomorrow.EndTime = tomorrow.EndTime.AddDate(0, 0, 1)

	uc, _ := newTestUseCase(t, clockAt(t, 9, 15), nil,
		event(t, "Deep work", 10, 30, 12, 30),
		event(t, "Standup", 9, 0, 10, 0),
		tomorrow,
	)

	t.Run("Today by default", func(t *testing.T) {
		out, err := uc.ListEvents(ctx, schedule.ListEventsInput{})
		require.NoError(t, err)
		require.Len(t, out.Events, 2)
		assert.Equal(t, "Standup", out.Events[0].Title)
		assert.Equal(t, "Deep work", out.Events[1].Title)
		assert.True(t, out.Day.Equal(clockAt(t, 0, 0)))
	})

	t.Run("Relative day", func(t *testing.T) {
		out, err := uc.ListEvents(ctx, schedule.ListEventsInput{Day: "tomorrow"})
		require.NoError(t, err)
		require.Len(t, out.Events, 1)
		assert.Equal(t, "Dentist", out.Events[0].Title)
	})

	t.Run("ISO date", func(t *testing.T) {
		out, err := uc.ListEvents(ctx, schedule.ListEventsInput{Day: "2026-03-11"})
		require.NoError(t, err)
		assert.Len(t, out.Events, 1)
	})
}

func TestAddEvent(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t, clockAt(t, 9, 15), nil)

	t.Run("Defaults to work", func(t *testing.T) {
		out, err := uc.AddEvent(ctx, schedule.AddEventInput{
			Title:     "  Review  ",
			StartTime: clockAt(t, 14, 0),
			EndTime:   clockAt(t, 15, 0),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.Event.ID)
		assert.Equal(t, "Review", out.Event.Title)
		assert.Equal(t, model.CategoryWork, out.Event.Category)
		assert.Equal(t, model.SourceLocal, out.Event.Source)
	})

	t.Run("Rejects inverted interval", func(t *testing.T) {
		_, err := uc.AddEvent(ctx, schedule.AddEventInput{
			Title:     "Backwards",
			StartTime: clockAt(t, 15, 0),
			EndTime:   clockAt(t, 14, 0),
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidEvent)
	})

	t.Run("Rejects empty title", func(t *testing.T) {
		_, err := uc.AddEvent(ctx, schedule.AddEventInput{
			StartTime: clockAt(t, 14, 0),
			EndTime:   clockAt(t, 15, 0),
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidEvent)
	})

	t.Run("Rejects unknown category", func(t *testing.T) {
		_, err := uc.AddEvent(ctx, schedule.AddEventInput{
			Title:     "Nap",
			StartTime: clockAt(t, 14, 0),
			EndTime:   clockAt(t, 15, 0),
			Category:  "sleep",
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidCategory)
	})
}

func TestUpdateEvent(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase(t, clockAt(t, 9, 15), nil)

	created, err := uc.AddEvent(ctx, schedule.AddEventInput{
		Title:     "Gym",
		StartTime: clockAt(t, 17, 0),
		EndTime:   clockAt(t, 18, 0),
		Category:  model.CategoryGym,
	})
	require.NoError(t, err)

	t.Run("Partial update keeps other fields", func(t *testing.T) {
		done := true
		newStart := clockAt(t, 17, 30)
		newEnd := clockAt(t, 18, 30)
		out, err := uc.UpdateEvent(ctx, schedule.UpdateEventInput{
			ID:        created.Event.ID,
			StartTime: &newStart,
			EndTime:   &newEnd,
			Completed: &done,
		})
		require.NoError(t, err)
		assert.Equal(t, "Gym", out.Event.Title)
		assert.Equal(t, model.CategoryGym, out.Event.Category)
		assert.True(t, out.Event.Completed)
		assert.True(t, out.Event.StartTime.Equal(newStart))

		stored, err := repo.GetOneEvent(ctx, created.Event.ID)
		require.NoError(t, err)
		assert.True(t, stored.Completed)
	})

	t.Run("End before start", func(t *testing.T) {
		end := clockAt(t, 8, 0)
		_, err := uc.UpdateEvent(ctx, schedule.UpdateEventInput{ID: created.Event.ID, EndTime: &end})
		assert.ErrorIs(t, err, schedule.ErrInvalidEvent)
	})

	t.Run("Unknown category", func(t *testing.T) {
		c := model.EventCategory("sleep")
		_, err := uc.UpdateEvent(ctx, schedule.UpdateEventInput{ID: created.Event.ID, Category: &c})
		assert.ErrorIs(t, err, schedule.ErrInvalidCategory)
	})

	t.Run("Missing event", func(t *testing.T) {
		title := "Ghost"
		_, err := uc.UpdateEvent(ctx, schedule.UpdateEventInput{ID: "missing", Title: &title})
		assert.ErrorIs(t, err, schedule.ErrEventNotFound)
	})
}

func TestRemoveEvent(t *testing.T) {
	ctx := context.Background()
	seed := event(t, "Standup", 9, 0, 10, 0)
	seed.ID = "standup"
	uc, repo := newTestUseCase(t, clockAt(t, 9, 15), nil, seed)

	require.NoError(t, uc.RemoveEvent(ctx, "standup"))

	got, err := repo.GetOneEvent(ctx, "standup")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	assert.ErrorIs(t, uc.RemoveEvent(ctx, "standup"), schedule.ErrEventNotFound)
}

func TestRemovedEventFreesSlot(t *testing.T) {
	ctx := context.Background()
	seed := event(t, "Block", 9, 0, 22, 0)
	seed.ID = "block"
	uc, _ := newTestUseCase(t, clockAt(t, 9, 15), nil, seed)

	before, err := uc.FindSlot(ctx, schedule.FindSlotInput{DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, 11, before.StartTime.Day())

	require.NoError(t, uc.RemoveEvent(ctx, "block"))

	after, err := uc.FindSlot(ctx, schedule.FindSlotInput{DurationMinutes: 60})
	require.NoError(t, err)
	assert.True(t, after.StartTime.Equal(clockAt(t, 9, 15)))
	assert.Equal(t, time.Hour, after.EndTime.Sub(after.StartTime))
}
