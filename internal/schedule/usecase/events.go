package usecase

import (
	"context"
	"strings"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	repo "schedule-assistant/internal/schedule/repository"
)

// ListEvents returns the events of one calendar day ordered by start.
func (uc *implUseCase) ListEvents(ctx context.Context, input schedule.ListEventsInput) (schedule.ListEventsOutput, error) {
	from, to, err := uc.resolveDay(input.Day)
	if err != nil {
		return schedule.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{From: from, To: to})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents ListEvents: %v", err)
		return schedule.ListEventsOutput{}, err
	}

	return schedule.ListEventsOutput{Day: from, Events: events}, nil
}

// AddEvent stores a new event. An empty category defaults to work.
func (uc *implUseCase) AddEvent(ctx context.Context, input schedule.AddEventInput) (schedule.EventOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.StartTime.IsZero() || !input.StartTime.Before(input.EndTime) {
		return schedule.EventOutput{}, schedule.ErrInvalidEvent
	}

	category := input.Category
	if category == "" {
		category = model.CategoryWork
	}
	if !category.IsValid() {
		return schedule.EventOutput{}, schedule.ErrInvalidCategory
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title:       title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddEvent CreateEvent: %v", err)
		return schedule.EventOutput{}, err
	}

	return schedule.EventOutput{Event: ev}, nil
}

// UpdateEvent applies a partial update. Returns ErrEventNotFound when not found.
func (uc *implUseCase) UpdateEvent(ctx context.Context, input schedule.UpdateEventInput) (schedule.EventOutput, error) {
	existing, err := uc.repo.GetOneEvent(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEvent GetOneEvent: %v", err)
		return schedule.EventOutput{}, err
	}
	if existing.ID == "" {
		return schedule.EventOutput{}, schedule.ErrEventNotFound
	}

	opt := repo.UpdateEventOptions{
		ID:          existing.ID,
		Title:       strings.TrimSpace(coalesce(input.Title, existing.Title)),
		Description: coalesce(input.Description, existing.Description),
		StartTime:   coalesce(input.StartTime, existing.StartTime),
		EndTime:     coalesce(input.EndTime, existing.EndTime),
		Category:    coalesce(input.Category, existing.Category),
		Completed:   coalesce(input.Completed, existing.Completed),
		ExternalID:  existing.ExternalID,
	}
	if opt.Title == "" || !opt.StartTime.Before(opt.EndTime) {
		return schedule.EventOutput{}, schedule.ErrInvalidEvent
	}
	if !opt.Category.IsValid() {
		return schedule.EventOutput{}, schedule.ErrInvalidCategory
	}

	ev, err := uc.repo.UpdateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateEvent UpdateEvent: %v", err)
		return schedule.EventOutput{}, err
	}
	return schedule.EventOutput{Event: ev}, nil
}

// RemoveEvent deletes an event by ID. Returns ErrEventNotFound when not found.
func (uc *implUseCase) RemoveEvent(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveEvent GetOneEvent: %v", err)
		return err
	}
	if existing.ID == "" {
		return schedule.ErrEventNotFound
	}
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.RemoveEvent DeleteEvent: %v", err)
		return err
	}
	return nil
}
