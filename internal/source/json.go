package source

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"daygrid/internal/event"
)

// jsonEvent is the on-disk shape of one event. Times accept RFC 3339 or a
// zone-less local form.
type jsonEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// JSONSource reads the event collection from a JSON file: an array of
// objects with id, title, color, start, and end fields.
type JSONSource struct {
	Path string
	loc  *time.Location
}

// NewJSONSource builds a source for the given file, interpreting zone-less
// timestamps in loc.
func NewJSONSource(path string, loc *time.Location) *JSONSource {
	if loc == nil {
		loc = time.Local
	}
	return &JSONSource{Path: path, loc: loc}
}

// Events reads and parses the whole file. A malformed or degenerate entry
// fails the entire load; the caller keeps its previous collection.
func (s *JSONSource) Events() ([]event.Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}
	return ParseEvents(data, s.loc)
}

// ParseEvents decodes a JSON event array into validated events.
func ParseEvents(data []byte, loc *time.Location) ([]event.Event, error) {
	var raw []jsonEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing events JSON: %w", err)
	}

	events := make([]event.Event, 0, len(raw))
	for i, je := range raw {
		start, err := parseTime(je.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): start: %w", i, je.ID, err)
		}
		end, err := parseTime(je.End, loc)
		if err != nil {
			return nil, fmt.Errorf("event %d (%s): end: %w", i, je.ID, err)
		}

		e, err := event.New(je.ID, je.Title, je.Color, start, end)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func parseTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}
