package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeDimensions are the fixed heights of a pipe pair.
type PipeDimensions struct {
	Top    int
	Bottom int
}

// Validate checks the heights against the flight area and gap.
func (d PipeDimensions) Validate(flightHeight, gap, minHeight int) error {
	if d.Top < minHeight || d.Bottom < minHeight {
		return fmt.Errorf("pipe heights %d/%d below minimum %d", d.Top, d.Bottom, minHeight)
	}
	if d.Top+gap+d.Bottom != flightHeight {
		return fmt.Errorf("pipe heights %d+%d+%d do not fill flight height %d", d.Top, gap, d.Bottom, flightHeight)
	}
	return nil
}

// pipeLayout is the horizontal and vertical frame shared by all pipes.
type pipeLayout struct {
	flightArea core.Box
	gap        float64
	width      float64
	spawnX     float64 // Left edge at spawn, relative to the flight area
	offScreenX float64 // Removal threshold, relative to the flight area
}

// Pipe is one obstacle pair. It does not move itself: its boxes follow
// the ambient scroll and are refreshed on every tick.
type Pipe struct {
	Dims   PipeDimensions
	Scored bool

	layout    pipeLayout
	spawnedAt float64 // Track distance when spawned
	upper     core.Box
	lower     core.Box
}

func newPipe(dims PipeDimensions, layout pipeLayout, spawnedAt float64) *Pipe {
	return &Pipe{Dims: dims, layout: layout, spawnedAt: spawnedAt}
}

// Tick refreshes both boxes from the distance scrolled so far.
func (p *Pipe) Tick(scrolled float64) {
	fa := p.layout.flightArea
	x := fa.X + p.layout.spawnX - (scrolled - p.spawnedAt)
	top := float64(p.Dims.Top)

	p.upper = core.Box{X: x, Y: fa.Y, W: p.layout.width, H: top}
	p.lower = core.Box{X: x, Y: fa.Y + top + p.layout.gap, W: p.layout.width, H: float64(p.Dims.Bottom)}
}

// IsOffScreen reports whether the pipe has scrolled past the removal threshold.
func (p *Pipe) IsOffScreen() bool {
	return p.upper.X <= p.layout.flightArea.X+p.layout.offScreenX
}

// HasCrossed reports whether the pipe's trailing edge is at or left of the
// box's leading edge. A pipe that has not been ticked yet has no width and
// never counts as crossed.
func (p *Pipe) HasCrossed(box core.Box) bool {
	return p.upper.W != 0 && p.upper.Right() <= box.X
}

// IntersectsWith reports whether either half overlaps the box.
func (p *Pipe) IntersectsWith(box core.Box) bool {
	return p.upper.Intersects(box) || p.lower.Intersects(box)
}

// Upper returns the upper box.
func (p *Pipe) Upper() core.Box { return p.upper }

// Lower returns the lower box.
func (p *Pipe) Lower() core.Box { return p.lower }
