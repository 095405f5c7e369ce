package parse

import (
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"

	"buswatch.dev/nextbus"
	"buswatch.dev/nextbus/storage"
)

type DepartureCSV struct {
	RouteID       string `csv:"route_id"`
	StopName      string `csv:"stop_name"`
	DepartureTime string `csv:"departure_time"`
}

// ParseTimetables reads a departures CSV and produces one timetable
// per route. Rows must already be in service-day order per route;
// their order is preserved, never re-sorted. Each row needs a
// route_id, a stop_name and a departure_time of the form "H:MM" or
// "HH:MM". The resulting timetables are sorted by route ID.
func ParseTimetables(data io.Reader) ([]*storage.Timetable, error) {
	// LazyCSVReader required (at least) to survive sloppy use of
	// quotes. The BOM reader strips unicode BOMs if present.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return gocsv.LazyCSVReader(bom.NewReader(in))
	})

	byRoute := map[string]*storage.Timetable{}

	i := -1
	err := gocsv.UnmarshalToCallbackWithError(data, func(dep *DepartureCSV) error {
		i += 1
		if dep.RouteID == "" {
			return fmt.Errorf("missing route_id (row %d)", i+1)
		}

		t, err := nextbus.ParseClock(dep.DepartureTime)
		if err != nil {
			return errors.Wrapf(err, "parsing departure_time (row %d)", i+1)
		}

		tt, found := byRoute[dep.RouteID]
		if !found {
			tt = &storage.Timetable{
				Route: dep.RouteID,
				Stop:  dep.StopName,
			}
			byRoute[dep.RouteID] = tt
		}
		tt.Departures = append(tt.Departures, fmt.Sprintf("%02d%02d", t.Hour, t.Minute))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling departures csv")
	}

	if len(byRoute) == 0 {
		return nil, fmt.Errorf("no departures found")
	}

	timetables := make([]*storage.Timetable, 0, len(byRoute))
	for _, tt := range byRoute {
		timetables = append(timetables, tt)
	}
	sort.Slice(timetables, func(i, j int) bool {
		return timetables[i].Route < timetables[j].Route
	})

	return timetables, nil
}
