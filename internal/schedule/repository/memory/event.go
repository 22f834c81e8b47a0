package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/log"
)

type implRepository struct {
	l log.Logger

	mu     sync.RWMutex
	events []model.Event // ordered by StartTime
}

// New creates an in-memory schedule store. Malformed seed events are dropped.
func New(l log.Logger, seed ...model.Event) repository.Repository {
	r := &implRepository{l: l}
	for _, ev := range seed {
		if !ev.IsWellFormed() {
			continue
		}
		if ev.ID == "" {
			ev.ID = uuid.NewString()
		}
		ev.Source = sourceOrLocal(ev.Source)
		r.insert(ev)
	}
	return r
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	ev := model.Event{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Description: opt.Description,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Category:    opt.Category,
		Completed:   opt.Completed,
		Source:      sourceOrLocal(opt.Source),
		ExternalID:  opt.ExternalID,
	}
	if !ev.IsWellFormed() {
		return model.Event{}, fmt.Errorf("%w: %w", repository.ErrFailedToInsert, repository.ErrMalformedEvent)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(ev)
	return ev, nil
}

// GetOneEvent returns the event with id, or a zero Event when absent.
func (r *implRepository) GetOneEvent(ctx context.Context, id string) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.events[i], nil
	}
	return model.Event{}, nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, 0, len(r.events))
	for _, ev := range r.events {
		if inRange(ev, opt.From, opt.To) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Event{}, fmt.Errorf("%w: %s not found", repository.ErrFailedToUpdate, opt.ID)
	}

	ev := r.events[i]
	ev.Title = opt.Title
	ev.Description = opt.Description
	ev.StartTime = opt.StartTime
	ev.EndTime = opt.EndTime
	ev.Category = opt.Category
	ev.Completed = opt.Completed
	ev.ExternalID = opt.ExternalID
	if !ev.IsWellFormed() {
		return model.Event{}, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, repository.ErrMalformedEvent)
	}

	// Re-insert so the ordering follows the new start time.
	r.events = slices.Delete(r.events, i, i+1)
	r.insert(ev)
	return ev, nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s not found", repository.ErrFailedToDelete, id)
	}
	r.events = slices.Delete(r.events, i, i+1)
	return nil
}

func (r *implRepository) ReplaceRange(ctx context.Context, opt repository.ReplaceRangeOptions) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := sourceOrLocal(opt.Source)
	removed := 0
	r.events = slices.DeleteFunc(r.events, func(ev model.Event) bool {
		drop := ev.Source == source && inRange(ev, opt.From, opt.To)
		if drop {
			removed++
		}
		return drop
	})

	// Events pushed from another source come back with the same external ID.
	owned := make(map[string]struct{})
	for _, ev := range r.events {
		if ev.ExternalID != "" && ev.Source != source {
			owned[ev.ExternalID] = struct{}{}
		}
	}

	inserted := 0
	for _, o := range opt.Events {
		if _, ok := owned[o.ExternalID]; ok && o.ExternalID != "" {
			continue
		}
		ev := model.Event{
			ID:          uuid.NewString(),
			Title:       o.Title,
			Description: o.Description,
			StartTime:   o.StartTime,
			EndTime:     o.EndTime,
			Category:    o.Category,
			Completed:   o.Completed,
			Source:      source,
			ExternalID:  o.ExternalID,
		}
		if !ev.IsWellFormed() {
			r.l.Warnf(ctx, "memory.ReplaceRange: skipping malformed event %q", o.Title)
			continue
		}
		r.insert(ev)
		inserted++
	}

	r.l.Debugf(ctx, "memory.ReplaceRange: source=%s removed=%d inserted=%d", source, removed, inserted)
	return inserted, nil
}

// insert places ev after every event that starts at or before it. Caller holds mu.
func (r *implRepository) insert(ev model.Event) {
	i, _ := slices.BinarySearchFunc(r.events, ev.StartTime, func(e model.Event, t time.Time) int {
		if e.StartTime.After(t) {
			return 1
		}
		return -1
	})
	r.events = slices.Insert(r.events, i, ev)
}

func (r *implRepository) indexOf(id string) int {
	return slices.IndexFunc(r.events, func(e model.Event) bool { return e.ID == id })
}

func inRange(ev model.Event, from, to time.Time) bool {
	if !from.IsZero() && !ev.EndTime.After(from) {
		return false
	}
	if !to.IsZero() && !ev.StartTime.Before(to) {
		return false
	}
	return true
}

func sourceOrLocal(s model.EventSource) model.EventSource {
	if s == "" {
		return model.SourceLocal
	}
	return s
}
