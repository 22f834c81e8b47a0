package availability

import (
	"fmt"
	"slices"
	"time"
)

// Resolver finds an open slot of a requested length in a day's bookings.
// It holds only configuration and is safe for concurrent use.
type Resolver struct {
	opts Options
}

// New validates opts and returns a Resolver.
func New(opts Options) (*Resolver, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Resolver{opts: opts}, nil
}

// Options returns the resolver's day-window configuration.
func (r *Resolver) Options() Options {
	return r.opts
}

// FindSlot returns a slot of req.DurationMinutes that does not overlap any of
// events. The search runs, in order: late-day override, the category's
// preferred windows, a first-fit scan of the rest of today, and finally the
// next-day fallback.
//
// events is never modified. FindSlot does not panic; internal failures come
// back as KindFault.
func (r *Resolver) FindSlot(events []Interval, req Request, now time.Time) Result {
	return guard(func() Result {
		return r.findSlot(events, req, now)
	})
}

// guard runs fn and turns a panic into a KindFault result.
func guard(fn func() Result) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Result{Kind: KindFault, Err: fmt.Errorf("%w: %v", ErrInternal, rec)}
		}
	}()
	return fn()
}

func (r *Resolver) findSlot(events []Interval, req Request, now time.Time) Result {
	if req.DurationMinutes <= 0 {
		return Result{Kind: KindInvalid, Err: ErrInvalidDuration}
	}
	d := req.Duration()
	busy := snapshot(events)

	if now.Hour() >= r.opts.LateDayHour {
		return r.nextDay(busy, d, now, StrategyLateDay)
	}

	if slot, ok := r.categoryWindow(busy, req.Category, d, now); ok {
		return found(slot, StrategyCategoryWindow)
	}

	cursor := later(now, r.at(now, 0, r.opts.DayStartHour))
	if slot, ok := firstFit(busy, cursor, r.at(now, 0, r.opts.DayEndHour), d); ok {
		return found(slot, StrategyFirstFit)
	}

	return r.nextDay(busy, d, now, StrategyNextDay)
}

func (r *Resolver) categoryWindow(busy []Interval, c Category, d time.Duration, now time.Time) (Interval, bool) {
	for _, w := range c.Windows() {
		ws := r.at(now, 0, w[0])
		we := r.at(now, 0, w[1])
		if !we.After(now) {
			continue
		}
		if !IsAvailable(ws, we, busy, d) {
			continue
		}
		start := later(ws, now)
		slot := Interval{Start: start, End: start.Add(d)}
		// A start clamped to now can push the slot past the window's end.
		if collides(slot, busy) {
			continue
		}
		return slot, true
	}
	return Interval{}, false
}

func (r *Resolver) nextDay(busy []Interval, d time.Duration, now time.Time, strategy Strategy) Result {
	start := r.at(now, 1, r.opts.FallbackHour)
	if !r.opts.FallbackChecksBookings {
		return found(Interval{Start: start, End: start.Add(d)}, strategy)
	}
	if slot, ok := firstFit(busy, start, r.at(now, 1, r.opts.DayEndHour), d); ok {
		return found(slot, strategy)
	}
	return Result{Kind: KindNotFound, Err: ErrNoCapacity}
}

// at returns hour:00 on the calendar day of now shifted by dayOffset, in
// now's location.
func (r *Resolver) at(now time.Time, dayOffset, hour int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+dayOffset, hour, 0, 0, 0, now.Location())
}

// firstFit walks the bookings in start order and returns the first gap of at
// least d between cursor and end. Segment ends are event starts followed by
// end itself.
func firstFit(busy []Interval, cursor, end time.Time, d time.Duration) (Interval, bool) {
	for _, ev := range busy {
		segEnd := ev.Start
		if segEnd.After(end) {
			segEnd = end
		}
		if segEnd.Sub(cursor) >= d {
			return Interval{Start: cursor, End: cursor.Add(d)}, true
		}
		// The cursor only moves forward; an event nested inside an earlier
		// one must not pull it back into a booked span.
		if ev.End.After(cursor) {
			cursor = ev.End
		}
	}
	if end.Sub(cursor) >= d {
		return Interval{Start: cursor, End: cursor.Add(d)}, true
	}
	return Interval{}, false
}

func collides(slot Interval, busy []Interval) bool {
	for _, ev := range busy {
		if Overlaps(slot.Start, slot.End, ev.Start, ev.End) {
			return true
		}
	}
	return false
}

// snapshot copies the well-formed intervals and sorts them by start.
func snapshot(events []Interval) []Interval {
	out := make([]Interval, 0, len(events))
	for _, ev := range events {
		if ev.valid() {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func found(slot Interval, strategy Strategy) Result {
	return Result{Kind: KindFound, Slot: slot, Strategy: strategy}
}

func (o Options) validate() error {
	switch {
	case o.DayStartHour < 0 || o.DayEndHour > 24 || o.DayStartHour >= o.DayEndHour:
		return fmt.Errorf("%w: day window %d-%d", ErrInvalidOptions, o.DayStartHour, o.DayEndHour)
	case o.LateDayHour < 0 || o.LateDayHour > 24:
		return fmt.Errorf("%w: late day hour %d", ErrInvalidOptions, o.LateDayHour)
	case o.FallbackHour < 0 || o.FallbackHour > 23:
		return fmt.Errorf("%w: fallback hour %d", ErrInvalidOptions, o.FallbackHour)
	}
	return nil
}
