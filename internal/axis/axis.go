// Package axis maps between a bounded virtual week index and concrete
// calendar dates. A scrolling list over a fixed number of virtual sections
// gives the illusion of an infinite horizontal axis; the middle section is
// anchored to a reference date captured at construction time.
package axis

import (
	"errors"
	"time"

	"daygrid/internal/dateutil"
)

// ErrSectionOutOfRange indicates a virtual index beyond the finite scroll
// range. Navigation clamps at the boundary instead of wrapping; this error
// exists for collaborators that need to detect the dead-end.
var ErrSectionOutOfRange = errors.New("virtual section out of range")

// Mapper converts virtual week indices to dates and back. It is immutable
// after construction.
type Mapper struct {
	reference     time.Time // week start of the anchor date, at midnight
	totalSections int
	middleSection int
	weekStart     time.Weekday
}

// NewMapper anchors middleSection to the week containing reference.
// dayOfWeek 0 always maps to the configured week-start day.
func NewMapper(reference time.Time, totalSections, middleSection int, weekStart time.Weekday) *Mapper {
	return &Mapper{
		reference:     dateutil.StartOfWeek(reference, weekStart),
		totalSections: totalSections,
		middleSection: middleSection,
		weekStart:     weekStart,
	}
}

// TotalSections returns the size of the virtual axis.
func (m *Mapper) TotalSections() int {
	return m.totalSections
}

// MiddleSection returns the zero-offset anchor index.
func (m *Mapper) MiddleSection() int {
	return m.middleSection
}

// CheckSection reports ErrSectionOutOfRange for indices outside
// [0, totalSections).
func (m *Mapper) CheckSection(section int) error {
	if section < 0 || section >= m.totalSections {
		return ErrSectionOutOfRange
	}
	return nil
}

// ClampSection pins a section into the valid range.
func (m *Mapper) ClampSection(section int) int {
	if section < 0 {
		return 0
	}
	if section >= m.totalSections {
		return m.totalSections - 1
	}
	return section
}

// DateForIndex returns referenceWeekStart + (section-middle) weeks +
// dayOfWeek days, as midnight in the reference location. Out-of-range
// sections are clamped; dayOfWeek is clamped into [0,6]. All arithmetic is
// calendar-day addition, never fixed 86400-second math, so results stay
// aligned across DST shifts.
func (m *Mapper) DateForIndex(section, dayOfWeek int) time.Time {
	section = m.ClampSection(section)
	if dayOfWeek < 0 {
		dayOfWeek = 0
	} else if dayOfWeek > 6 {
		dayOfWeek = 6
	}
	return m.reference.AddDate(0, 0, (section-m.middleSection)*7+dayOfWeek)
}

// IndexForDate is the inverse of DateForIndex: the week difference between
// the reference week start and the date's week start, offset by the middle
// section, plus the date's position within its week.
func (m *Mapper) IndexForDate(date time.Time) (section, dayOfWeek int) {
	weekStart := dateutil.StartOfWeek(date, m.weekStart)
	days := dateutil.DaysBetween(m.reference, weekStart)
	section = m.ClampSection(m.middleSection + days/7)
	dayOfWeek = dateutil.DaysBetween(weekStart, dateutil.StartOfDay(date))
	return section, dayOfWeek
}
