package state

import "time"

// Clock abstracts time.Now so tests can pin "today" and the now marker to
// fixed instants.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock with the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
