package availability

import "errors"

var (
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrInvalidOptions  = errors.New("invalid day window options")
	ErrNoCapacity      = errors.New("no free slot of the requested duration")
	ErrInternal        = errors.New("slot search aborted")
)
