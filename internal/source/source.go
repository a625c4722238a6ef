// Package source supplies the event collections the widget engine consumes.
// Events always arrive wholesale; there is no partial mutation path.
package source

import "daygrid/internal/event"

// EventSource is anything that can produce the full event collection.
type EventSource interface {
	// Events returns the complete current collection.
	Events() ([]event.Event, error)
}
