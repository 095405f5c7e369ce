package storage

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"buswatch.dev/nextbus"
)

// ErrNotFound is returned when a route has no stored timetable.
var ErrNotFound = errors.New("no timetable found")

// Storage holds one timetable per route.
type Storage interface {
	// All route IDs with a stored timetable, sorted.
	ListRoutes() ([]string, error)

	// Retrieves the timetable for a route. ErrNotFound if the route
	// has none.
	ReadTimetable(route string) (*Timetable, error)

	// Writes a timetable. An existing record for the same route is
	// replaced wholesale, departures included.
	WriteTimetable(tt *Timetable) error

	// Removes a route's timetable. ErrNotFound if the route has
	// none.
	DeleteTimetable(route string) error

	Close() error
}

// Timetable is a route's stored departure sequence for one stop.
// Departures are "HHMM" strings in service-day order; their position
// in the slice is the order the route runs them, and it survives
// storage round trips unchanged.
type Timetable struct {
	Route      string
	Stop       string
	Departures []string
	ImportedAt time.Time
}

// Schedule builds the resolver's table from the stored record. The
// usual sequence validation applies, so a record tampered into
// disorder fails here rather than at query time.
func (tt *Timetable) Schedule() (*nextbus.Schedule, error) {
	times := make([]nextbus.DayTime, len(tt.Departures))
	for i, dep := range tt.Departures {
		if len(dep) != 4 {
			return nil, fmt.Errorf("bad departure '%s' at %d", dep, i)
		}
		hour, errH := strconv.Atoi(dep[0:2])
		minute, errM := strconv.Atoi(dep[2:4])
		if errH != nil || errM != nil {
			return nil, fmt.Errorf("bad departure '%s' at %d", dep, i)
		}
		times[i] = nextbus.DayTime{Hour: hour, Minute: minute}
	}

	return nextbus.NewSchedule(tt.Route, times)
}
