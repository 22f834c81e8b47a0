package datemath

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Clock supplies the current instant. Inject a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock and reports it in Location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// locations caches tz database lookups; LoadLocation reads from disk.
var locations = mustNewCache(64)

func mustNewCache(size int) *lru.Cache[string, *time.Location] {
	c, err := lru.New[string, *time.Location](size)
	if err != nil {
		panic(fmt.Sprintf("datemath: location cache: %v", err))
	}
	return c
}

// LoadLocation is time.LoadLocation with a bounded cache in front of it.
func LoadLocation(name string) (*time.Location, error) {
	if loc, ok := locations.Get(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	locations.Add(name, loc)
	return loc, nil
}
