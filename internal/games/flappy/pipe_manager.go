package flappy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeManager handles spawning, scrolling and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	pipes     []*Pipe
	rng       *rand.Rand
	track     *Track
	geometry  config.PipeGeometry
	layout    pipeLayout
	delay     time.Duration
	lastSpawn time.Time // Zero until the first spawn, so the first tick spawns
	logger    *log.Logger
}

// NewPipeManager creates a pipe manager. Easy mode widens the gap.
func NewPipeManager(cfg config.FlappyConfig, easy bool, track *Track, rng *rand.Rand, logger *log.Logger) *PipeManager {
	geometry := cfg.PipeGeometry(easy)
	fa := cfg.Layout.FlightArea
	return &PipeManager{
		pipes:    make([]*Pipe, 0, 8),
		rng:      rng,
		track:    track,
		geometry: geometry,
		layout: pipeLayout{
			flightArea: core.NewBox(fa.X, fa.Y, fa.Width, fa.Height),
			gap:        float64(geometry.Gap),
			width:      cfg.Pipes.Width,
			spawnX:     cfg.Pipes.SpawnX,
			offScreenX: cfg.Pipes.OffScreenX,
		},
		delay:  cfg.Pipes.SpawnDelay,
		logger: logger,
	}
}

// Tick refreshes every pipe, then spawns a new pipe and prunes the ones
// that left the field once the spawn delay has elapsed.
func (pm *PipeManager) Tick(now time.Time) {
	scrolled := pm.track.Distance(now)
	for _, p := range pm.pipes {
		p.Tick(scrolled)
	}

	since := now.Sub(pm.lastSpawn)
	if since < pm.delay {
		return
	}

	pm.lastSpawn = now
	dims := pm.createDimensions()
	g := pm.geometry
	if err := dims.Validate(g.FlightHeight, g.Gap, g.MinTop); err != nil {
		pm.logger.Debug("skipping pipe", "err", err)
	} else {
		pm.pipes = append(pm.pipes, newPipe(dims, pm.layout, scrolled))
		pm.logger.Debug("inserting pipe", "top", dims.Top, "bottom", dims.Bottom, "since", since)
	}

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.IsOffScreen() {
			pm.logger.Debug("pruning pipe", "x", p.upper.X)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(pm.pipes); i++ {
		pm.pipes[i] = nil
	}
	pm.pipes = kept
}

// createDimensions picks a random top height and derives the bottom one.
func (pm *PipeManager) createDimensions() PipeDimensions {
	g := pm.geometry
	top := g.MinTop
	if g.MaxTop > g.MinTop {
		top = g.MinTop + pm.rng.Intn(g.MaxTop-g.MinTop+1)
	}
	return PipeDimensions{Top: top, Bottom: g.Bottom(top)}
}

// IntersectsWith reports whether any pipe overlaps the box.
func (pm *PipeManager) IntersectsWith(box core.Box) bool {
	for _, p := range pm.pipes {
		if p.IntersectsWith(box) {
			return true
		}
	}
	return false
}

// NextUnscored returns the earliest pipe not yet scored, or nil.
func (pm *PipeManager) NextUnscored() *Pipe {
	for _, p := range pm.pipes {
		if !p.Scored {
			return p
		}
	}
	return nil
}

// RemoveAll drops every pipe. The spawn timer is left as is.
func (pm *PipeManager) RemoveAll() {
	clear(pm.pipes)
	pm.pipes = pm.pipes[:0]
}

// Pipes returns the live pipes in spawn order.
func (pm *PipeManager) Pipes() []*Pipe {
	return pm.pipes
}

// Geometry returns the resolved pipe geometry.
func (pm *PipeManager) Geometry() config.PipeGeometry {
	return pm.geometry
}
