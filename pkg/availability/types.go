package availability

import "time"

// Interval is a busy or candidate span of time. A zero Start or End marks
// the interval as malformed.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) valid() bool {
	return !i.Start.IsZero() && !i.End.IsZero() && i.End.After(i.Start)
}

// Request describes the slot a caller is looking for.
type Request struct {
	DurationMinutes int
	Category        Category
}

// Duration returns the requested length as a time.Duration.
func (r Request) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

// Kind tags the outcome of a slot search.
type Kind int

const (
	// KindFound means Result.Slot holds a usable interval.
	KindFound Kind = iota
	// KindNotFound means the search completed without capacity.
	KindNotFound
	// KindInvalid means the request was rejected before searching.
	KindInvalid
	// KindFault means the search aborted on an internal error.
	KindFault
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Strategy records which step of the search produced a slot.
type Strategy string

const (
	StrategyLateDay        Strategy = "late_day"
	StrategyCategoryWindow Strategy = "category_window"
	StrategyFirstFit       Strategy = "first_fit"
	StrategyNextDay        Strategy = "next_day"
)

// Result is the tagged outcome of Resolver.FindSlot.
type Result struct {
	Kind     Kind
	Slot     Interval
	Strategy Strategy
	Err      error
}

// Found reports whether the result carries a slot.
func (r Result) Found() bool {
	return r.Kind == KindFound
}

// Options holds the day-window configuration of a Resolver. Hours are
// wall-clock hours in the location of the "now" passed to FindSlot.
type Options struct {
	DayStartHour int
	DayEndHour   int
	LateDayHour  int
	FallbackHour int

	// FallbackChecksBookings makes the next-day fallback run a first-fit
	// scan over tomorrow's events instead of returning FallbackHour blindly.
	FallbackChecksBookings bool
}

// DefaultOptions returns the reference day window: 06:00-22:00, late-day
// cutoff at 18:00, next-day fallback at 09:00.
func DefaultOptions() Options {
	return Options{
		DayStartHour: 6,
		DayEndHour:   22,
		LateDayHour:  18,
		FallbackHour: 9,
	}
}
