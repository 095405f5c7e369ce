package nextbus

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Clock supplies wall time and timers. The schedule carries no
// timezone, so Now must already be in the timezone the schedule was
// written for.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the default Clock, backed by local system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Renderer puts the two display lines in front of the user. Anything
// that can show two short strings qualifies.
type Renderer interface {
	Render(counter, details string) error
}

// Watch drives the once-per-minute update cycle of a display. Fields
// can be adjusted between NewWatch and Run.
type Watch struct {
	Clock  Clock
	Logger zerolog.Logger

	// Notify, if set, observes every update with the resolved
	// departure and the minutes remaining until it.
	Notify func(next DayTime, minutes int)

	display  *Display
	renderer Renderer
}

func NewWatch(display *Display, renderer Renderer) *Watch {
	return &Watch{
		Clock:    SystemClock{},
		Logger:   zerolog.Nop(),
		display:  display,
		renderer: renderer,
	}
}

// Step performs a single cycle: resolve the next departure for the
// current minute and render both lines.
func (w *Watch) Step() error {
	now := DayTimeOf(w.Clock.Now())
	next, minutes := w.display.Update(now)

	if w.Notify != nil {
		w.Notify(next, minutes)
	}

	return w.renderer.Render(w.display.Counter(), w.display.Details())
}

// Run renders once immediately, then steps at every minute boundary
// until ctx is cancelled. A failed first render aborts the run;
// failures in the loop are logged and the next minute is attempted
// anyway.
func (w *Watch) Run(ctx context.Context) error {
	if err := w.Step(); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.Clock.After(untilNextMinute(w.Clock.Now())):
			if err := w.Step(); err != nil {
				w.Logger.Warn().Err(err).Msg("render failed")
			}
		}
	}
}

// Duration until the next minute boundary. On an exact boundary the
// full minute is returned, so a tick never fires twice in the same
// minute.
func untilNextMinute(now time.Time) time.Duration {
	return now.Truncate(time.Minute).Add(time.Minute).Sub(now)
}
