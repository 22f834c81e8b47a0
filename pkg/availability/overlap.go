package availability

import "time"

// Overlaps reports whether the event [eventStart, eventEnd] collides with the
// slot [slotStart, slotEnd]. Boundaries are half-open so back-to-back spans
// sharing an instant do not collide.
func Overlaps(slotStart, slotEnd, eventStart, eventEnd time.Time) bool {
	// eventStart in [slotStart, slotEnd)
	if !eventStart.Before(slotStart) && eventStart.Before(slotEnd) {
		return true
	}
	// eventEnd in (slotStart, slotEnd]
	if eventEnd.After(slotStart) && !eventEnd.After(slotEnd) {
		return true
	}
	// event covers the whole slot
	return !eventStart.After(slotStart) && !eventEnd.Before(slotEnd)
}

// IsAvailable reports whether [windowStart, windowEnd] spans at least duration
// and no event overlaps it. Malformed events are ignored.
func IsAvailable(windowStart, windowEnd time.Time, events []Interval, duration time.Duration) bool {
	if windowEnd.Sub(windowStart) < duration {
		return false
	}
	for _, ev := range events {
		if !ev.valid() {
			continue
		}
		if Overlaps(windowStart, windowEnd, ev.Start, ev.End) {
			return false
		}
	}
	return true
}
