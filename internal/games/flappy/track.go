package flappy

import "time"

// Track is the ambient horizontal scroll shared by pipes and land.
// Distance grows at a constant speed and freezes while paused.
type Track struct {
	speed  float64 // pixels per second
	base   float64 // distance accumulated before since
	since  time.Time
	paused bool
}

// NewTrack starts a running track at now.
func NewTrack(speed float64, now time.Time) *Track {
	return &Track{speed: speed, since: now}
}

// Distance returns the pixels scrolled up to now.
func (t *Track) Distance(now time.Time) float64 {
	if t.paused {
		return t.base
	}
	elapsed := now.Sub(t.since)
	if elapsed < 0 {
		elapsed = 0
	}
	return t.base + elapsed.Seconds()*t.speed
}

// Pause freezes the track at its current distance.
func (t *Track) Pause(now time.Time) {
	if t.paused {
		return
	}
	t.base = t.Distance(now)
	t.paused = true
}

// Resume continues scrolling from the frozen distance.
func (t *Track) Resume(now time.Time) {
	if !t.paused {
		return
	}
	t.since = now
	t.paused = false
}

// Paused reports whether the track is frozen.
func (t *Track) Paused() bool {
	return t.paused
}
