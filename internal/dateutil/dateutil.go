package dateutil

import (
	"math"
	"time"
)

// StartOfDay returns midnight of the given date in its own location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns midnight of the first day of the week containing date,
// for the given week-start convention.
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	offset := int(date.Weekday()) - int(weekStart)
	if offset < 0 {
		offset += 7
	}
	return StartOfDay(date.AddDate(0, 0, -offset))
}

// SameDay returns true if two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day()
}

// DaysBetween returns the number of calendar days from a to b (negative if b
// is earlier). Both arguments must be at midnight. The hour difference is
// rounded so that 23- and 25-hour days around DST transitions still count as
// exactly one day.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// MinuteOfDay returns the wall-clock minutes from midnight for the instant.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsWeekend returns true if the date is Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
