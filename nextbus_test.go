package nextbus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buswatch.dev/nextbus"
	"buswatch.dev/nextbus/parse"
	"buswatch.dev/nextbus/testutil"
)

// Follows a timetable from CSV through storage to the rendered
// display lines.
func TestTimetableToDisplay(t *testing.T) {
	csv := strings.Join([]string{
		"route_id,stop_name,departure_time",
		"82,Main Square,7:15",
		"82,Main Square,7:45",
		"82,Main Square,23:59",
		"82,Main Square,0:18",
	}, "\n")

	timetables, err := parse.ParseTimetables(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, timetables, 1)

	s := testutil.BuildStorage(t, "sqlite")
	defer s.Close()

	require.NoError(t, s.WriteTimetable(timetables[0]))

	stored, err := s.ReadTimetable("82")
	require.NoError(t, err)

	schedule, err := stored.Schedule()
	require.NoError(t, err)

	display := nextbus.NewDisplay(schedule)

	for _, tc := range []struct {
		Now     nextbus.DayTime
		Counter string
		Details string
	}{
		{nextbus.DayTime{Hour: 7, Minute: 0}, "15m", "82:  7:15"},
		{nextbus.DayTime{Hour: 7, Minute: 15}, "30m", "82:  7:45"},
		{nextbus.DayTime{Hour: 23, Minute: 30}, "29m", "82:  23:59"},
		// In sequence order 7:15 comes before the wrapped 0:18, so
		// it wins right after midnight.
		{nextbus.DayTime{Hour: 0, Minute: 5}, "60+m", "82:  7:15"},
	} {
		display.Update(tc.Now)
		assert.Equal(t, tc.Counter, display.Counter(), "at %s", tc.Now)
		assert.Equal(t, tc.Details, display.Details(), "at %s", tc.Now)
	}
}

// The day the device ships with: route 700, checked at the times a
// commuter would glance at it.
func TestDefaultScheduleDay(t *testing.T) {
	schedule, err := nextbus.DefaultSchedule()
	require.NoError(t, err)

	display := nextbus.NewDisplay(schedule)

	for _, tc := range []struct {
		Now     nextbus.DayTime
		Counter string
		Details string
	}{
		{nextbus.DayTime{Hour: 5, Minute: 50}, "16m", "700:  6:06"},
		{nextbus.DayTime{Hour: 6, Minute: 6}, "19m", "700:  6:25"},
		{nextbus.DayTime{Hour: 12, Minute: 0}, "2m", "700:  12:02"},
		{nextbus.DayTime{Hour: 19, Minute: 31}, "23m", "700:  19:54"},
		{nextbus.DayTime{Hour: 23, Minute: 40}, "19m", "700:  23:59"},
		{nextbus.DayTime{Hour: 23, Minute: 59}, "60+m", "700:  5:47"},
		{nextbus.DayTime{Hour: 0, Minute: 20}, "60+m", "700:  5:47"},
		{nextbus.DayTime{Hour: 3, Minute: 0}, "60+m", "700:  5:47"},
		{nextbus.DayTime{Hour: 5, Minute: 46}, "1m", "700:  5:47"},
	} {
		display.Update(tc.Now)
		assert.Equal(t, tc.Counter, display.Counter(), "at %s", tc.Now)
		assert.Equal(t, tc.Details, display.Details(), "at %s", tc.Now)
	}
}
