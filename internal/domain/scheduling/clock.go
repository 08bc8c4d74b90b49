package scheduling

import "time"

// Clock supplies "now" to the scheduler so week/today decisions are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the workshop location.
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
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
