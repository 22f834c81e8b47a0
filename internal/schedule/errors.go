package schedule

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrInvalidEvent          = errors.New("event must have a title and start before it ends")
	ErrInvalidCategory       = errors.New("unknown event category")
	ErrInvalidDay            = errors.New("invalid day")
	ErrInvalidDuration       = errors.New("duration must be a positive number of minutes")
	ErrNoSlot                = errors.New("no availability for the requested duration")
	ErrSlotSearchFailed      = errors.New("slot search failed")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
