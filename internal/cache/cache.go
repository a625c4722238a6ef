// Package cache maintains the per-day event index: which events fall on
// which calendar day. Population is lazy and memoized, with an eager
// week-window path so that scrolling inside the buffered range never hits a
// synchronous filter pass.
package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"daygrid/internal/dateutil"
	"daygrid/internal/event"
)

// evictionSlack is extra capacity beyond the buffer window so that entries
// just outside the window survive a selection change.
const evictionSlack = 7

// DayCache owns the full event collection and every cached day entry; it is
// the sole writer of both. All access is serialized through one mutex - the
// cache is not built to tolerate concurrent writers or torn reads.
type DayCache struct {
	mu        sync.Mutex
	loc       *time.Location
	weekStart time.Weekday

	events  []event.Event
	entries *lru.Cache[event.Key, []event.Event]

	populations int
}

// New builds a DayCache bounded to the given buffer window. Capacity is the
// full window (2*bufferWeeks+1 weeks of days) plus slack; older entries are
// evicted least-recently-used.
func New(loc *time.Location, weekStart time.Weekday, bufferWeeks int) *DayCache {
	capacity := (2*bufferWeeks+1)*7 + evictionSlack
	entries, err := lru.New[event.Key, []event.Event](capacity)
	if err != nil {
		// Only reachable with a non-positive capacity, which the
		// formula above cannot produce.
		panic(fmt.Sprintf("cache: bad capacity %d: %v", capacity, err))
	}
	return &DayCache{
		loc:       loc,
		weekStart: weekStart,
		entries:   entries,
	}
}

// SetEvents replaces the full source collection and clears every cached day
// entry. There is no incremental diffing: the collection is widget-scale, so
// a rescan per requested day is cheaper than being clever. Degenerate events
// (end before start) are rejected wholesale and the previous collection is
// kept.
func (c *DayCache) SetEvents(events []event.Event) error {
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = make([]event.Event, len(events))
	copy(c.events, events)
	c.entries.Purge()
	c.populations = 0
	return nil
}

// EventsForDay returns the day entry for the given key, computing and
// storing it on first access. The returned slice is owned by the cache and
// must not be mutated; order is the filter order over the source collection.
func (c *DayCache) EventsForDay(day event.Key) []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eventsForDayLocked(day)
}

func (c *DayCache) eventsForDayLocked(day event.Key) []event.Event {
	if entry, ok := c.entries.Get(day); ok {
		return entry
	}

	entry := []event.Event{}
	for _, e := range c.events {
		if e.OccursOn(day, c.loc) {
			entry = append(entry, e)
		}
	}
	c.entries.Add(day, entry)
	c.populations++
	return entry
}

// LoadWindow eagerly populates every day in the inclusive week range around
// centerDay, aligned to the configured week start. Already-populated days
// are served from memory, so re-windowing around a nearby selection only
// computes the newly exposed edge.
func (c *DayCache) LoadWindow(centerDay time.Time, weeksBefore, weeksAfter int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := dateutil.StartOfWeek(centerDay, c.weekStart).AddDate(0, 0, -7*weeksBefore)
	days := 7 * (weeksBefore + weeksAfter + 1)

	day := event.KeyOf(start)
	for i := 0; i < days; i++ {
		c.eventsForDayLocked(day)
		day = day.Next()
	}
}

// Populations returns how many day entries have been computed since the last
// invalidation. Observable cost counter; used by tests to prove memoization.
func (c *DayCache) Populations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.populations
}

// Len returns the number of cached day entries.
func (c *DayCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
