package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Land is the ground strip under the flight area. It never moves.
type Land struct {
	box core.Box
}

// NewLand captures the land box directly below the flight area.
func NewLand(flightArea core.Box, height float64) *Land {
	return &Land{box: core.Box{
		X: flightArea.X,
		Y: flightArea.Bottom(),
		W: flightArea.W,
		H: height,
	}}
}

// IntersectsWith reports whether the box touches the land.
func (l *Land) IntersectsWith(box core.Box) bool {
	return l.box.Intersects(box)
}

// Box returns the land box.
func (l *Land) Box() core.Box { return l.box }
