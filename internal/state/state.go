// Package state holds the widget's single source of truth: the selected
// date, the hour-pixel zoom scale, the month-view flag, and the sampled
// "now" instant. The Controller orchestrates the day cache and the virtual
// axis on navigation and exposes the narrow API the presentation layer
// consumes.
package state

import (
	"time"

	"daygrid/internal/axis"
	"daygrid/internal/cache"
	"daygrid/internal/dateutil"
	"daygrid/internal/event"
	"daygrid/internal/layout"
)

// NowRefreshInterval is how often the presentation layer should resample the
// clock and call RefreshNow.
const NowRefreshInterval = 60 * time.Second

// Settings is the read-only configuration injected at construction.
type Settings struct {
	WeekStart     time.Weekday
	HourHeight    float64
	MinHourHeight float64
	MaxHourHeight float64
	BufferWeeks   int
	TotalSections int
	MiddleSection int
	Location      *time.Location
}

// Snapshot is the value handed to change listeners after every mutation.
type Snapshot struct {
	Selected      time.Time
	HourHeight    float64
	MonthExpanded bool
	Now           time.Time
}

// Controller is a reactive value holder, not a protocol state machine: it
// has a single "ready" state and every transition is a plain assignment plus
// derived cache work. All mutators are synchronous and none can fail under
// normal input - defensive clamping replaces error signaling throughout.
//
// The controller expects to run on one logical thread (the bubbletea update
// loop in this repo); the periodic now refresh must be marshalled onto that
// same thread by the caller, e.g. via tea.Tick.
type Controller struct {
	settings Settings
	clock    Clock
	cache    *cache.DayCache
	mapper   *axis.Mapper

	selected      time.Time
	hourHeight    float64
	monthExpanded bool
	now           time.Time

	listeners []func(Snapshot)
}

// New builds a Controller anchored at the clock's current instant. The full
// buffer window around today is populated eagerly here; later navigation
// only extends the window by one week either side and relies on memoization
// for the rest.
func New(settings Settings, clock Clock) *Controller {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	now := clock.Now()

	c := &Controller{
		settings:   settings,
		clock:      clock,
		cache:      cache.New(settings.Location, settings.WeekStart, settings.BufferWeeks),
		mapper:     axis.NewMapper(now, settings.TotalSections, settings.MiddleSection, settings.WeekStart),
		selected:   now,
		hourHeight: settings.HourHeight,
		now:        now,
	}
	c.cache.LoadWindow(now, settings.BufferWeeks, settings.BufferWeeks)
	return c
}

// Subscribe registers a change listener. Listeners run synchronously on the
// mutating call, in registration order.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	snap := c.snapshot()
	for _, fn := range c.listeners {
		fn(snap)
	}
}

func (c *Controller) snapshot() Snapshot {
	return Snapshot{
		Selected:      c.selected,
		HourHeight:    c.hourHeight,
		MonthExpanded: c.monthExpanded,
		Now:           c.now,
	}
}

// SetEvents replaces the full event collection. The entire day index is
// invalidated and the immediate window around the selection is recomputed.
func (c *Controller) SetEvents(events []event.Event) error {
	if err := c.cache.SetEvents(events); err != nil {
		return err
	}
	c.cache.LoadWindow(c.selected, 1, 1)
	c.notify()
	return nil
}

// SelectDate moves the selection and extends the cache window by one week
// either side of it.
func (c *Controller) SelectDate(date time.Time) {
	c.selected = date
	c.cache.LoadWindow(date, 1, 1)
	c.notify()
}

// MoveToNextDay advances the selection by one calendar day.
func (c *Controller) MoveToNextDay() {
	c.SelectDate(c.selected.AddDate(0, 0, 1))
}

// MoveToPreviousDay moves the selection back one calendar day.
func (c *Controller) MoveToPreviousDay() {
	c.SelectDate(c.selected.AddDate(0, 0, -1))
}

// MoveToToday resets the selection to the clock's current instant.
func (c *Controller) MoveToToday() {
	c.SelectDate(c.clock.Now())
}

// UpdateZoom applies a completed zoom gesture. The scale factor is relative
// to the configured default hour height and the result is clamped into
// [MinHourHeight, MaxHourHeight]; overshoot is routine gesture behavior, not
// an error. Intermediate gesture samples should animate a transient visual
// scale instead of calling this, to avoid cache and layout thrash.
func (c *Controller) UpdateZoom(scaleFactor float64) {
	h := c.settings.HourHeight * scaleFactor
	if h < c.settings.MinHourHeight {
		h = c.settings.MinHourHeight
	} else if h > c.settings.MaxHourHeight {
		h = c.settings.MaxHourHeight
	}
	c.hourHeight = h
	c.notify()
}

// ToggleMonthView flips the month presentation flag. No data-model effect.
func (c *Controller) ToggleMonthView() {
	c.monthExpanded = !c.monthExpanded
	c.notify()
}

// RefreshNow resamples the clock. Only the cached instant changes; callers
// drive this on a fixed interval (NowRefreshInterval) independent of user
// interaction.
func (c *Controller) RefreshNow() {
	c.now = c.clock.Now()
	c.notify()
}

// Selected returns the current selection.
func (c *Controller) Selected() time.Time {
	return c.selected
}

// HourHeight returns the current hour-pixel scale.
func (c *Controller) HourHeight() float64 {
	return c.hourHeight
}

// MonthExpanded returns the month presentation flag.
func (c *Controller) MonthExpanded() bool {
	return c.monthExpanded
}

// SelectedIsToday reports whether the selection falls on the same calendar
// day as the last sampled now.
func (c *Controller) SelectedIsToday() bool {
	return dateutil.SameDay(c.selected, c.now)
}

// EventsForDay returns the events occurring on the given date, ordered by
// start time ascending.
func (c *Controller) EventsForDay(date time.Time) []event.Event {
	return layout.SortByStart(c.cache.EventsForDay(event.KeyOf(date)))
}

// LayoutForDay computes the rectangles for the given date at the given scale
// and width, aligned 1:1 with EventsForDay's ordering.
func (c *Controller) LayoutForDay(date time.Time, hourHeight, width float64) []layout.Rect {
	day := event.KeyOf(date)
	return layout.DayLayout(c.EventsForDay(date), day, hourHeight, width, c.settings.Location)
}

// NowCursorPosition returns the vertical offset of the now marker for the
// selected day, and whether it is visible.
func (c *Controller) NowCursorPosition(hourHeight float64) (float64, bool) {
	return layout.NowCursor(c.now, event.KeyOf(c.selected), hourHeight)
}

// DateForVirtualIndex resolves a virtual week section and day-of-week to a
// concrete date. Out-of-range sections clamp at the axis boundary.
func (c *Controller) DateForVirtualIndex(section, dayOfWeek int) time.Time {
	return c.mapper.DateForIndex(section, dayOfWeek)
}

// VirtualIndexForDate is the inverse of DateForVirtualIndex.
func (c *Controller) VirtualIndexForDate(date time.Time) (section, dayOfWeek int) {
	return c.mapper.IndexForDate(date)
}
