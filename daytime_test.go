package nextbus_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buswatch.dev/nextbus"
)

func TestDayTimeCompare(t *testing.T) {
	for _, tc := range []struct {
		A        nextbus.DayTime
		B        nextbus.DayTime
		Expected int
	}{
		// Hours decide first.
		{nextbus.DayTime{Hour: 5, Minute: 47}, nextbus.DayTime{Hour: 6, Minute: 6}, -1},
		{nextbus.DayTime{Hour: 6, Minute: 6}, nextbus.DayTime{Hour: 5, Minute: 47}, 1},
		{nextbus.DayTime{Hour: 9, Minute: 59}, nextbus.DayTime{Hour: 10, Minute: 0}, -1},
		{nextbus.DayTime{Hour: 0, Minute: 18}, nextbus.DayTime{Hour: 23, Minute: 59}, -1},

		// Minutes break ties within an hour.
		{nextbus.DayTime{Hour: 6, Minute: 25}, nextbus.DayTime{Hour: 6, Minute: 6}, 19},
		{nextbus.DayTime{Hour: 6, Minute: 6}, nextbus.DayTime{Hour: 6, Minute: 25}, -19},
		{nextbus.DayTime{Hour: 6, Minute: 6}, nextbus.DayTime{Hour: 6, Minute: 6}, 0},

		// Hours past 24 sort after everything within the day.
		{nextbus.DayTime{Hour: 29, Minute: 47}, nextbus.DayTime{Hour: 23, Minute: 59}, 1},
	} {
		t.Run(fmt.Sprintf("%s vs %s", tc.A, tc.B), func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.A.Compare(tc.B))
		})
	}
}

func TestDayTimeString(t *testing.T) {
	assert.Equal(t, "6:06", nextbus.DayTime{Hour: 6, Minute: 6}.String())
	assert.Equal(t, "23:59", nextbus.DayTime{Hour: 23, Minute: 59}.String())
	assert.Equal(t, "0:18", nextbus.DayTime{Hour: 0, Minute: 18}.String())
	assert.Equal(t, "29:47", nextbus.DayTime{Hour: 29, Minute: 47}.String())
}

func TestDayTimeOf(t *testing.T) {
	assert.Equal(
		t,
		nextbus.DayTime{Hour: 7, Minute: 4},
		nextbus.DayTimeOf(time.Date(2024, 3, 1, 7, 4, 30, 0, time.UTC)),
	)
	assert.Equal(
		t,
		nextbus.DayTime{Hour: 0, Minute: 0},
		nextbus.DayTimeOf(time.Date(2024, 3, 1, 0, 0, 59, 0, time.UTC)),
	)
}

func TestParseClock(t *testing.T) {
	for _, tc := range []struct {
		Input    string
		Expected nextbus.DayTime
	}{
		{"5:47", nextbus.DayTime{Hour: 5, Minute: 47}},
		{"05:47", nextbus.DayTime{Hour: 5, Minute: 47}},
		{"23:59", nextbus.DayTime{Hour: 23, Minute: 59}},
		{"0:00", nextbus.DayTime{Hour: 0, Minute: 0}},
		{"12:02", nextbus.DayTime{Hour: 12, Minute: 2}},
	} {
		parsed, err := nextbus.ParseClock(tc.Input)
		require.NoError(t, err)
		assert.Equal(t, tc.Expected, parsed)
	}

	for _, input := range []string{
		"",
		"6",
		"6:6:6",
		"24:00",
		"-1:30",
		"12:60",
		"12:-5",
		"six:30",
		"12:3x",
	} {
		_, err := nextbus.ParseClock(input)
		assert.Error(t, err, "expected error for %q", input)
	}
}
