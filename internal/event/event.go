package event

import (
	"errors"
	"fmt"
	"time"

	"daygrid/internal/dateutil"
)

// ErrInvalidRange is returned for events whose end precedes their start.
// Such events are rejected outright rather than reordered, so caller bugs
// stay visible.
var ErrInvalidRange = errors.New("event end precedes start")

// Event is a single time-ranged calendar entry. The range is half-open,
// [Start, End): an event ending exactly at midnight does not occur on the
// following day. Start == End is a valid zero-duration event.
type Event struct {
	ID    string
	Title string
	Color string
	Start time.Time
	End   time.Time
}

// New validates the range and builds an immutable Event.
func New(id, title, color string, start, end time.Time) (Event, error) {
	e := Event{ID: id, Title: title, Color: color, Start: start, End: end}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Validate reports whether the event's range is well-formed.
func (e Event) Validate() error {
	if e.End.Before(e.Start) {
		return fmt.Errorf("event %q: %w", e.ID, ErrInvalidRange)
	}
	return nil
}

// OccursOn reports whether the event touches the given calendar day.
// Comparisons use calendar-day boundaries built with time.Date, so they stay
// correct across DST transitions where a day is not 24 hours.
func (e Event) OccursOn(day Key, loc *time.Location) bool {
	dayStart := day.Start(loc)
	dayEnd := day.Next().Start(loc)

	if e.End.After(e.Start) {
		return e.Start.Before(dayEnd) && e.End.After(dayStart)
	}
	// Zero-duration events occur on their start day only.
	return !e.Start.Before(dayStart) && e.Start.Before(dayEnd)
}

// Portion is the part of an event clipped to a single day.
type Portion struct {
	Start time.Time
	End   time.Time
}

// StartMinute returns the wall-clock minute of day at which the portion
// begins.
func (p Portion) StartMinute() int {
	return dateutil.MinuteOfDay(p.Start)
}

// EndMinute returns the wall-clock minute of day at which the portion ends.
// A portion running to the day boundary reports 1440, not 0.
func (p Portion) EndMinute() int {
	m := dateutil.MinuteOfDay(p.End)
	if m == 0 && p.End.After(p.Start) {
		return 24 * 60
	}
	return m
}

// Minutes returns the portion's length in wall-clock grid minutes. Never
// negative, even when a DST transition makes wall positions non-monotonic
// with elapsed time.
func (p Portion) Minutes() int {
	d := p.EndMinute() - p.StartMinute()
	if d < 0 {
		return 0
	}
	return d
}

// PortionOn returns the sub-interval of the event that falls on the given
// day: [max(start, dayStart), min(end, dayEnd)). The second return is false
// when the event does not occur on the day at all; that is a normal empty
// result, not an error. Zero-duration events yield a zero-length portion with
// ok = true.
func (e Event) PortionOn(day Key, loc *time.Location) (Portion, bool) {
	if !e.OccursOn(day, loc) {
		return Portion{}, false
	}

	start := e.Start
	if dayStart := day.Start(loc); start.Before(dayStart) {
		start = dayStart
	}
	end := e.End
	if dayEnd := day.Next().Start(loc); end.After(dayEnd) {
		end = dayEnd
	}
	return Portion{Start: start, End: end}, true
}
