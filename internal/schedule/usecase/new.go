package usecase

import (
	"sync"
	"time"

	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/availability"
	"schedule-assistant/pkg/datemath"
	"schedule-assistant/pkg/log"
)

// slotFinder is the part of *availability.Resolver the use case calls.
type slotFinder interface {
	FindSlot(events []availability.Interval, req availability.Request, now time.Time) availability.Result
}

// implUseCase is the private implementation of schedule.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	calendar repository.CalendarSource // nil when Google Calendar is not configured
	resolver slotFinder
	dates    *datemath.Parser
	clock    datemath.Clock

	// bookMu serialises find-then-create so two bookings cannot take the same slot.
	bookMu sync.Mutex
}

// New creates a new schedule UseCase implementation. calendar may be nil.
func New(
	l log.Logger,
	repo repository.Repository,
	calendar repository.CalendarSource,
	resolver *availability.Resolver,
	dates *datemath.Parser,
	clock datemath.Clock,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		resolver: resolver,
		dates:    dates,
		clock:    clock,
	}
}
