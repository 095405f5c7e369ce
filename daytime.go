package nextbus

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayTime is a clock reading within a service day. Hour runs 0-23 in
// schedule entries; NextArrival may return hour 24 or more to mark a
// departure on the following day. There is no date and no timezone.
type DayTime struct {
	Hour   int
	Minute int
}

// Compare orders two times of day. The result is negative if t is
// before o, positive if after, and zero if they name the same minute.
// Hours are compared first, minutes only break ties.
func (t DayTime) Compare(o DayTime) int {
	if t.Hour < o.Hour {
		return -1
	} else if t.Hour == o.Hour {
		return t.Minute - o.Minute
	}
	return 1
}

func (t DayTime) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// DayTimeOf reduces a wall clock instant to its hour and minute. The
// instant is read in its own location; callers keep the clock in the
// timezone the schedule was written for.
func DayTimeOf(t time.Time) DayTime {
	return DayTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock reads a "H:MM" or "HH:MM" string with hour 0-23.
func ParseClock(s string) (DayTime, error) {
	split := strings.Split(s, ":")
	if len(split) != 2 {
		return DayTime{}, fmt.Errorf("found %d parts in '%s'", len(split), s)
	}

	hm := [2]int{}
	for i, str := range split {
		j, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return DayTime{}, fmt.Errorf("non-integer in '%s' pos %d", s, i)
		}
		hm[i] = j
	}

	if hm[0] < 0 || hm[0] > 23 {
		return DayTime{}, fmt.Errorf("invalid hour in '%s'", s)
	}
	if hm[1] < 0 || hm[1] > 59 {
		return DayTime{}, fmt.Errorf("invalid minute in '%s'", s)
	}

	return DayTime{Hour: hm[0], Minute: hm[1]}, nil
}
