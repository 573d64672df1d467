package storage

import (
	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

// Saver persists the events fetched for a club.
type Saver interface {
	SaveEvents(club string, events calendar.Events) error
}

// Loader reads back cached events; with no club slugs it loads everything.
type Loader interface {
	LoadEvents(clubs ...string) (calendar.Events, error)
	Clubs() ([]string, error)
}
