package nextbus

import "fmt"

// Counter text shown when the wait is too long to count down.
const saturatedCounter = "60+m"

// Display holds the two lines of changing text on the face: the
// minutes counter and the route details. Both are overwritten on
// every Update.
type Display struct {
	schedule *Schedule
	counter  string
	details  string
}

func NewDisplay(schedule *Schedule) *Display {
	return &Display{schedule: schedule}
}

// Update recomputes both lines for the given time of day and reports
// the departure it settled on along with the minutes until it.
func (d *Display) Update(now DayTime) (next DayTime, minutes int) {
	next = d.schedule.NextArrival(now)
	minutes = MinutesDifference(next, now)

	if minutes > 60 {
		d.counter = saturatedCounter
	} else {
		d.counter = fmt.Sprintf("%dm", minutes)
	}

	// Hours above 24 are reduced for presentation. Exactly 24 stays,
	// reading as a past-midnight departure.
	at := next
	if at.Hour > 24 {
		at.Hour -= 24
	}
	d.details = fmt.Sprintf("%s:  %d:%02d", d.schedule.Route(), at.Hour, at.Minute)

	return next, minutes
}

// Counter returns the minutes line, "16m" or "60+m".
func (d *Display) Counter() string {
	return d.counter
}

// Details returns the route and departure line, "700:  6:06".
func (d *Display) Details() string {
	return d.details
}
