package nextbus

import "fmt"

// Schedule holds a single route's departures for one service day, in
// the order the route runs them. The sequence begins with the day's
// first departure; a tail of past-midnight departures (0:18 after
// 23:59, say) keeps its place at the end.
//
// A Schedule is immutable once built.
type Schedule struct {
	route string
	times []DayTime
}

// NewSchedule validates a departure sequence and copies it into a
// Schedule. The sequence must be non-empty, every entry within hour
// 0-23 and minute 0-59, and in service-day order: strictly ascending,
// except for at most one drop where the day crosses midnight, after
// which every entry must still fall before the day's first departure.
func NewSchedule(route string, times []DayTime) (*Schedule, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("no departures for route %s", route)
	}

	for i, t := range times {
		if t.Hour < 0 || t.Hour > 23 {
			return nil, fmt.Errorf("invalid hour %d in departure %d", t.Hour, i)
		}
		if t.Minute < 0 || t.Minute > 59 {
			return nil, fmt.Errorf("invalid minute %d in departure %d", t.Minute, i)
		}
	}

	wrapped := false
	for i := 1; i < len(times); i++ {
		cmp := times[i].Compare(times[i-1])
		if cmp == 0 {
			return nil, fmt.Errorf("duplicate departure %s at %d", times[i], i)
		}
		if cmp < 0 {
			if wrapped {
				return nil, fmt.Errorf("departure %s at %d out of order", times[i], i)
			}
			wrapped = true
		}
		if wrapped && times[i].Compare(times[0]) >= 0 {
			return nil, fmt.Errorf("departure %s at %d runs past the day's first departure %s", times[i], i, times[0])
		}
	}

	s := &Schedule{
		route: route,
		times: make([]DayTime, len(times)),
	}
	copy(s.times, times)

	return s, nil
}

// Route returns the route identifier shown alongside departures.
func (s *Schedule) Route() string {
	return s.route
}

// Len returns the number of departures in the service day.
func (s *Schedule) Len() int {
	return len(s.times)
}

// At returns the departure at position i in service-day order.
func (s *Schedule) At(i int) DayTime {
	return s.times[i]
}

// Times returns a copy of the departure sequence in service-day
// order.
func (s *Schedule) Times() []DayTime {
	times := make([]DayTime, len(s.times))
	copy(times, s.times)
	return times
}

// NextArrival resolves the next departure after now. The scan walks
// the sequence in order and takes the first entry strictly later than
// now; a bus leaving in the current minute is treated as gone. If no
// entry qualifies, the day's first departure is returned with its
// hour raised by 24 to mark it as tomorrow's.
func (s *Schedule) NextArrival(now DayTime) DayTime {
	for _, t := range s.times {
		if t.Compare(now) > 0 {
			return t
		}
	}

	next := s.times[0]
	next.Hour += 24
	return next
}

// MinutesDifference returns the whole minutes from now until next.
// next must be later than now and may carry hour 24 or more for a
// departure on the following day, as produced by NextArrival.
func MinutesDifference(next, now DayTime) int {
	mins := next.Minute - now.Minute
	carry := 0
	if mins < 0 {
		mins += 60
		carry = 1
	}
	mins += (next.Hour - now.Hour - carry) * 60
	return mins
}
