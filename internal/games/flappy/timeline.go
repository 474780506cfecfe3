package flappy

import (
	"errors"
	"time"
)

// ErrTimelineBusy is returned when a sequence is started while another runs.
var ErrTimelineBusy = errors.New("flappy: timeline already running")

// Step is one entry of a timed sequence. Run fires After the previous
// step's deadline (or after Start for the first step).
type Step struct {
	After time.Duration
	Name  string
	Run   func()
}

type scheduledStep struct {
	at   time.Time
	step Step
}

// Timeline runs an ordered sequence of timed steps against a caller
// supplied clock. Steps never overlap and a started sequence cannot be
// cancelled; it runs to completion as time is advanced.
type Timeline struct {
	pending []scheduledStep
}

// Start schedules steps relative to now. Steps that are already due run
// before Start returns.
func (t *Timeline) Start(now time.Time, steps ...Step) error {
	if t.Busy() {
		return ErrTimelineBusy
	}
	at := now
	for _, s := range steps {
		at = at.Add(s.After)
		t.pending = append(t.pending, scheduledStep{at: at, step: s})
	}
	t.Advance(now)
	return nil
}

// Advance runs every step whose deadline is at or before now, in order,
// and returns the number of steps run.
func (t *Timeline) Advance(now time.Time) int {
	ran := 0
	for len(t.pending) > 0 && !t.pending[0].at.After(now) {
		next := t.pending[0]
		t.pending = t.pending[1:]
		if next.step.Run != nil {
			next.step.Run()
		}
		ran++
	}
	return ran
}

// Busy reports whether a sequence is still in flight.
func (t *Timeline) Busy() bool {
	return len(t.pending) > 0
}

// Next returns the name and deadline of the next pending step.
func (t *Timeline) Next() (string, time.Time, bool) {
	if len(t.pending) == 0 {
		return "", time.Time{}, false
	}
	return t.pending[0].step.Name, t.pending[0].at, true
}
