// Package layout converts a day's events into non-overlapping screen
// rectangles inside the hour grid, and computes the position of the current
// time marker. It is stateless: a pure function of the day entry, the
// hour-pixel scale, and the available width.
package layout

import (
	"sort"
	"time"

	"daygrid/internal/event"
)

const (
	// MinEventHeight keeps zero- and short-duration events visible and
	// tappable.
	MinEventHeight = 20.0
	// ColumnInset is subtracted from each column width for visual
	// separation between side-by-side events.
	ColumnInset = 2.0
)

// Rect is an event's on-screen geometry in pixel space, relative to the day
// column's top-left origin. The time axis is excluded.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// SortByStart orders a day entry by start time ascending, preserving the
// entry's original order for equal starts. It returns a new slice; the input
// is left alone since day entries are owned by the cache.
func SortByStart(events []event.Event) []event.Event {
	sorted := make([]event.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

// DayLayout computes one rectangle per event, aligned 1:1 with the input
// order. Events must already be limited to those occurring on day and sorted
// by start time (see SortByStart).
//
// Vertical placement follows the clipped portion: y = startMinutes *
// hourHeight/60, height = max(durationMinutes * hourHeight/60,
// MinEventHeight). Horizontal overlap is resolved by equal-width columns
// sized by the total event count for the day, with each event placed at its
// index in the start-sorted sequence. Events that never overlap in time may
// therefore render narrower than strictly necessary; that matches the
// reference behavior and keeps the pass O(n).
//
// The output is deterministic: identical input, scale, and width produce
// bit-identical rectangles.
func DayLayout(events []event.Event, day event.Key, hourHeight, width float64, loc *time.Location) []Rect {
	rects := make([]Rect, len(events))
	if len(events) == 0 {
		return rects
	}

	columnWidth := width / float64(len(events))
	eventWidth := columnWidth - ColumnInset
	if eventWidth < 0 {
		eventWidth = 0
	}

	for i, e := range events {
		portion, ok := e.PortionOn(day, loc)
		if !ok {
			// Caller contract violated; emit an empty rectangle
			// rather than guessing a position.
			continue
		}

		height := float64(portion.Minutes()) * hourHeight / 60
		if height < MinEventHeight {
			height = MinEventHeight
		}

		rects[i] = Rect{
			X:      columnWidth * float64(i),
			Y:      float64(portion.StartMinute()) * hourHeight / 60,
			Width:  eventWidth,
			Height: height,
		}
	}
	return rects
}

// NowCursor returns the vertical pixel offset of the current time within the
// day grid, and whether the marker is visible at all. It is only visible
// when the selected day is the calendar day containing now. O(1), recomputed
// on demand; no caching.
func NowCursor(now time.Time, selectedDay event.Key, hourHeight float64) (float64, bool) {
	if event.KeyOf(now) != selectedDay {
		return 0, false
	}
	return float64(now.Hour()*60+now.Minute()) * hourHeight / 60, true
}
