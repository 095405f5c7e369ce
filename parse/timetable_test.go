package parse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buswatch.dev/nextbus/storage"
)

func TestParseTimetables(t *testing.T) {
	for _, tc := range []struct {
		name       string
		content    string
		err        string
		timetables []*storage.Timetable
	}{
		{
			"minimal",
			`
route_id,stop_name,departure_time
700,Elm Street,5:47`,
			"",
			[]*storage.Timetable{
				{
					Route:      "700",
					Stop:       "Elm Street",
					Departures: []string{"0547"},
				},
			},
		},

		{
			"several routes sorted, row order kept per route",
			`
route_id,stop_name,departure_time
700,Elm Street,5:47
700,Elm Street,6:06
82,Main Square,7:15
700,Elm Street,6:25
82,Main Square,23:59
82,Main Square,0:18`,
			"",
			[]*storage.Timetable{
				{
					Route:      "700",
					Stop:       "Elm Street",
					Departures: []string{"0547", "0606", "0625"},
				},
				{
					Route:      "82",
					Stop:       "Main Square",
					Departures: []string{"0715", "2359", "0018"},
				},
			},
		},

		{
			"zero padded times",
			`
route_id,stop_name,departure_time
700,Elm Street,05:47
700,Elm Street,06:06`,
			"",
			[]*storage.Timetable{
				{
					Route:      "700",
					Stop:       "Elm Street",
					Departures: []string{"0547", "0606"},
				},
			},
		},

		{
			"missing route_id",
			`
route_id,stop_name,departure_time
700,Elm Street,5:47
,Elm Street,6:06`,
			"missing route_id (row 2)",
			nil,
		},

		{
			"hour out of range",
			`
route_id,stop_name,departure_time
700,Elm Street,25:00`,
			"invalid hour",
			nil,
		},

		{
			"seconds not accepted",
			`
route_id,stop_name,departure_time
700,Elm Street,5:47:00`,
			"found 3 parts",
			nil,
		},

		{
			"header only",
			`
route_id,stop_name,departure_time`,
			"no departures found",
			nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			timetables, err := ParseTimetables(bytes.NewBufferString(tc.content))
			if tc.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.timetables, timetables)
		})
	}
}

func TestParseTimetablesBOM(t *testing.T) {
	content := "\xEF\xBB\xBFroute_id,stop_name,departure_time\n700,Elm Street,5:47\n"

	timetables, err := ParseTimetables(bytes.NewBufferString(content))
	require.NoError(t, err)
	require.Len(t, timetables, 1)
	assert.Equal(t, []string{"0547"}, timetables[0].Departures)
}

func TestParseTimetablesSloppyQuotes(t *testing.T) {
	content := `
route_id,stop_name,departure_time
700,Elm "Corner" Street,6:45`

	timetables, err := ParseTimetables(bytes.NewBufferString(content))
	require.NoError(t, err)
	require.Len(t, timetables, 1)
	assert.Equal(t, []string{"0645"}, timetables[0].Departures)
}
