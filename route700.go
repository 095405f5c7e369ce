package nextbus

// DefaultRoute is the route the compiled in timetable covers.
const DefaultRoute = "700"

// Route 700 towards the city center, one full service day. The last
// two departures run past midnight and stay at the tail of the
// sequence.
var defaultTimes = []DayTime{
	{5, 47}, {6, 6}, {6, 25}, {6, 45}, {7, 6}, {7, 21},
	{7, 37}, {7, 53}, {8, 9}, {8, 25}, {8, 40}, {9, 7},
	{9, 29}, {9, 51}, {10, 14}, {10, 36}, {10, 58}, {11, 19},
	{11, 40}, {12, 2}, {12, 23}, {12, 44}, {13, 6}, {13, 27},
	{13, 48}, {14, 10}, {14, 26}, {14, 42}, {14, 58}, {15, 14},
	{15, 30}, {15, 46}, {16, 7}, {16, 28}, {16, 50}, {17, 6},
	{17, 22}, {17, 38}, {17, 54}, {18, 10}, {18, 26}, {18, 42},
	{18, 58}, {19, 14}, {19, 30}, {19, 54}, {20, 18}, {20, 42},
	{21, 5}, {21, 24}, {21, 43}, {22, 3}, {22, 22}, {22, 41},
	{23, 1}, {23, 20}, {23, 39}, {23, 59}, {0, 18}, {0, 37},
}

// DefaultSchedule returns the timetable the device ships with.
func DefaultSchedule() (*Schedule, error) {
	return NewSchedule(DefaultRoute, defaultTimes)
}
