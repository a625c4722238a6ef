package axis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceScenario(t *testing.T) {
	// Monday 2024-01-01 anchored at the middle of a 10001-section axis.
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	m := NewMapper(reference, 10001, 5000, time.Monday)

	assert.Equal(t, reference, m.DateForIndex(5000, 0))
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local), m.DateForIndex(5001, 0))
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local), m.DateForIndex(4999, 0))
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local), m.DateForIndex(5000, 6))
}

func TestRoundTrip(t *testing.T) {
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	m := NewMapper(reference, 10001, 5000, time.Monday)

	// Sections chosen to cross month boundaries, the leap day, and a year
	// boundary; every (section, dayOfWeek) pair must round-trip exactly.
	sections := []int{4947, 4999, 5000, 5004, 5008, 5052, 5057}
	for _, section := range sections {
		for dayOfWeek := 0; dayOfWeek < 7; dayOfWeek++ {
			date := m.DateForIndex(section, dayOfWeek)
			gotSection, gotDay := m.IndexForDate(date)
			require.Equal(t, section, gotSection, "section for %v", date)
			require.Equal(t, dayOfWeek, gotDay, "dayOfWeek for %v", date)
		}
	}
}

func TestRoundTripYearBoundary(t *testing.T) {
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	m := NewMapper(reference, 10001, 5000, time.Monday)

	// The week of Dec 30 2024 spans the year boundary.
	newYearsEve := time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)
	section, dayOfWeek := m.IndexForDate(newYearsEve)
	assert.Equal(t, newYearsEve, m.DateForIndex(section, dayOfWeek))

	newYearsDay := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	section2, dayOfWeek2 := m.IndexForDate(newYearsDay)
	assert.Equal(t, section, section2, "Dec 31 and Jan 1 share a Monday-first week")
	assert.Equal(t, dayOfWeek+1, dayOfWeek2)
}

func TestRoundTripAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}

	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, loc)
	m := NewMapper(reference, 10001, 5000, time.Monday)

	for _, date := range []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, loc), // spring forward
		time.Date(2024, 3, 11, 0, 0, 0, 0, loc),
		time.Date(2024, 11, 3, 0, 0, 0, 0, loc), // fall back
		time.Date(2024, 11, 4, 0, 0, 0, 0, loc),
	} {
		section, dayOfWeek := m.IndexForDate(date)
		assert.Equal(t, date, m.DateForIndex(section, dayOfWeek), "round-trip for %v", date)
	}
}

func TestMidWeekReferenceNormalizes(t *testing.T) {
	// A Thursday reference anchors to its week's Monday.
	reference := time.Date(2024, 1, 4, 13, 45, 0, 0, time.Local)
	m := NewMapper(reference, 101, 50, time.Monday)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), m.DateForIndex(50, 0))
}

func TestOutOfRangeClamps(t *testing.T) {
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	m := NewMapper(reference, 11, 5, time.Monday)

	assert.Equal(t, m.DateForIndex(0, 0), m.DateForIndex(-3, 0), "below range clamps to first section")
	assert.Equal(t, m.DateForIndex(10, 0), m.DateForIndex(11, 0), "above range clamps to last section")

	assert.ErrorIs(t, m.CheckSection(-1), ErrSectionOutOfRange)
	assert.ErrorIs(t, m.CheckSection(11), ErrSectionOutOfRange)
	assert.NoError(t, m.CheckSection(0))
	assert.NoError(t, m.CheckSection(10))
}

func TestSundayFirstConvention(t *testing.T) {
	// 2024-01-01 is a Monday; Sunday-first weeks start on 2023-12-31.
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	m := NewMapper(reference, 101, 50, time.Sunday)

	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.Local), m.DateForIndex(50, 0))

	_, dayOfWeek := m.IndexForDate(reference)
	assert.Equal(t, 1, dayOfWeek, "Monday is day 1 in a Sunday-first week")
}
