package event

import (
	"fmt"
	"time"
)

// Key identifies a calendar day with no time component. Two instants on the
// same local day normalize to the same Key regardless of time of day, which
// makes Key suitable as a cache map key.
type Key struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyOf returns the Key for the calendar day containing t.
func KeyOf(t time.Time) Key {
	return Key{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Start returns midnight of the day in the given location.
func (k Key) Start(loc *time.Location) time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the Key n calendar days away. Uses calendar-day addition,
// not fixed 86400-second arithmetic, so it is stable across DST shifts.
func (k Key) AddDays(n int) Key {
	t := time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return KeyOf(t)
}

// Next returns the Key of the following day.
func (k Key) Next() Key {
	return k.AddDays(1)
}

func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}
