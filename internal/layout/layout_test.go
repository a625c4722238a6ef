package layout

import (
	"reflect"
	"testing"
	"time"

	"daygrid/internal/event"
)

func mustEvent(t *testing.T, id string, start, end time.Time) event.Event {
	t.Helper()
	e, err := event.New(id, id, "", start, end)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestThreeOverlappingEvents(t *testing.T) {
	loc := time.Local
	day := event.Key{Year: 2024, Month: time.May, Day: 1}
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, loc)
	end := time.Date(2024, 5, 1, 11, 0, 0, 0, loc)

	events := []event.Event{
		mustEvent(t, "a", start, end),
		mustEvent(t, "b", start, end),
		mustEvent(t, "c", start, end),
	}

	rects := DayLayout(events, day, 60, 300, loc)
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}

	wantX := []float64{0, 100, 200}
	for i, r := range rects {
		if r.X != wantX[i] {
			t.Errorf("rect %d: x = %v, want %v", i, r.X, wantX[i])
		}
		if r.Width != 98 {
			t.Errorf("rect %d: width = %v, want 98", i, r.Width)
		}
		if r.Y != 600 {
			t.Errorf("rect %d: y = %v, want 600 (10:00 at 60px/h)", i, r.Y)
		}
		if r.Height != 60 {
			t.Errorf("rect %d: height = %v, want 60", i, r.Height)
		}
	}
}

func TestMinimumVisibleHeight(t *testing.T) {
	loc := time.Local
	day := event.Key{Year: 2024, Month: time.May, Day: 1}
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, loc)

	// Zero-duration and five-minute events both get the visibility floor.
	events := []event.Event{
		mustEvent(t, "instant", at, at),
		mustEvent(t, "short", at, at.Add(5*time.Minute)),
	}

	rects := DayLayout(events, day, 60, 300, loc)
	for i, r := range rects {
		if r.Height != MinEventHeight {
			t.Errorf("rect %d: height = %v, want floor %v", i, r.Height, MinEventHeight)
		}
	}
}

func TestLayoutScalesWithHourHeight(t *testing.T) {
	loc := time.Local
	day := event.Key{Year: 2024, Month: time.May, Day: 1}
	events := []event.Event{
		mustEvent(t, "a",
			time.Date(2024, 5, 1, 8, 30, 0, 0, loc),
			time.Date(2024, 5, 1, 10, 0, 0, 0, loc)),
	}

	rects := DayLayout(events, day, 120, 300, loc)
	if rects[0].Y != 8.5*120 {
		t.Errorf("y = %v, want %v", rects[0].Y, 8.5*120)
	}
	if rects[0].Height != 1.5*120 {
		t.Errorf("height = %v, want %v", rects[0].Height, 1.5*120)
	}
}

func TestMultiDayEventClipsToDay(t *testing.T) {
	loc := time.Local
	day := event.Key{Year: 2024, Month: time.May, Day: 1}
	events := []event.Event{
		mustEvent(t, "span",
			time.Date(2024, 4, 30, 22, 0, 0, 0, loc),
			time.Date(2024, 5, 2, 2, 0, 0, 0, loc)),
	}

	rects := DayLayout(events, day, 60, 300, loc)
	if rects[0].Y != 0 {
		t.Errorf("y = %v, want 0 (clipped to midnight)", rects[0].Y)
	}
	if rects[0].Height != 24*60 {
		t.Errorf("height = %v, want full day %v", rects[0].Height, 24*60)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	loc := time.Local
	day := event.Key{Year: 2024, Month: time.May, Day: 1}
	events := []event.Event{
		mustEvent(t, "a",
			time.Date(2024, 5, 1, 9, 0, 0, 0, loc),
			time.Date(2024, 5, 1, 10, 30, 0, 0, loc)),
		mustEvent(t, "b",
			time.Date(2024, 5, 1, 10, 0, 0, 0, loc),
			time.Date(2024, 5, 1, 11, 0, 0, 0, loc)),
	}

	first := DayLayout(events, day, 60, 300, loc)
	second := DayLayout(events, day, 60, 300, loc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("layout not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestSortByStart(t *testing.T) {
	loc := time.Local
	later := mustEvent(t, "later",
		time.Date(2024, 5, 1, 14, 0, 0, 0, loc),
		time.Date(2024, 5, 1, 15, 0, 0, 0, loc))
	earlier := mustEvent(t, "earlier",
		time.Date(2024, 5, 1, 9, 0, 0, 0, loc),
		time.Date(2024, 5, 1, 10, 0, 0, 0, loc))

	input := []event.Event{later, earlier}
	sorted := SortByStart(input)

	if sorted[0].ID != "earlier" || sorted[1].ID != "later" {
		t.Errorf("got order %s, %s", sorted[0].ID, sorted[1].ID)
	}
	if input[0].ID != "later" {
		t.Error("input slice must not be reordered in place")
	}
}

func TestNowCursor(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 5, 1, 6, 30, 0, 0, loc)

	y, visible := NowCursor(now, event.Key{Year: 2024, Month: time.May, Day: 1}, 60)
	if !visible {
		t.Fatal("cursor should be visible on the same day")
	}
	if y != 390 {
		t.Errorf("y = %v, want 390 (06:30 at 60px/h)", y)
	}

	_, visible = NowCursor(now, event.Key{Year: 2024, Month: time.May, Day: 2}, 60)
	if visible {
		t.Error("cursor must be hidden when the selected day is not today")
	}
}
