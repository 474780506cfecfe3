package flappy

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestPipeManager(cfg config.FlappyConfig, easy bool, seed int64) (*PipeManager, *Track) {
	track := NewTrack(cfg.Pipes.ScrollSpeed, testEpoch)
	pm := NewPipeManager(cfg, easy, track, rand.New(rand.NewSource(seed)), log.New(io.Discard))
	return pm, track
}

func TestPipeManagerFirstTickSpawns(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)

	pm.Tick(testEpoch)

	if len(pm.Pipes()) != 1 {
		t.Fatalf("pipes after first tick = %d, want 1", len(pm.Pipes()))
	}
	if !pm.Pipes()[0].Upper().IsZero() {
		t.Error("a freshly spawned pipe is laid out on the next tick")
	}
}

func TestPipeManagerSkipsInvalidDimensions(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)
	// A top this tall leaves the bottom pipe below its minimum height.
	pm.geometry = config.PipeGeometry{Gap: 90, MinTop: 300, MaxTop: 300, FlightHeight: 420}

	pm.Tick(testEpoch)

	if len(pm.Pipes()) != 0 {
		t.Fatalf("pipes = %d, want invalid pipe skipped", len(pm.Pipes()))
	}
	if !pm.lastSpawn.Equal(testEpoch) {
		t.Error("a skipped spawn should still restart the spawn timer")
	}
}

func TestPipeManagerSpawnDelay(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)
	now := testEpoch

	pm.Tick(now)
	pm.Tick(now.Add(1399 * time.Millisecond))
	if len(pm.Pipes()) != 1 {
		t.Errorf("pipes before delay = %d, want 1", len(pm.Pipes()))
	}
	pm.Tick(now.Add(1400 * time.Millisecond))
	if len(pm.Pipes()) != 2 {
		t.Errorf("pipes at delay = %d, want 2", len(pm.Pipes()))
	}
	// The timer restarts from the last spawn
	pm.Tick(now.Add(2799 * time.Millisecond))
	if len(pm.Pipes()) != 2 {
		t.Errorf("pipes before second delay = %d, want 2", len(pm.Pipes()))
	}
	pm.Tick(now.Add(2800 * time.Millisecond))
	if len(pm.Pipes()) != 3 {
		t.Errorf("pipes at second delay = %d, want 3", len(pm.Pipes()))
	}
}

func TestPipeManagerDimensions(t *testing.T) {
	tests := []struct {
		name         string
		easy         bool
		gap          int
		minTop, maxT int
	}{
		{"normal", false, 90, 80, 250},
		{"easy", true, 120, 80, 220},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), tt.easy, 7)
			seenMin, seenMax := false, false
			for i := 0; i < 5000; i++ {
				d := pm.createDimensions()
				if d.Top < tt.minTop || d.Top > tt.maxT {
					t.Fatalf("top %d out of [%d, %d]", d.Top, tt.minTop, tt.maxT)
				}
				if err := d.Validate(420, tt.gap, 80); err != nil {
					t.Fatalf("invalid dimensions: %v", err)
				}
				seenMin = seenMin || d.Top == tt.minTop
				seenMax = seenMax || d.Top == tt.maxT
			}
			if !seenMin || !seenMax {
				t.Errorf("range bounds should be reachable: min=%v max=%v", seenMin, seenMax)
			}
		})
	}
}

func TestPipeManagerDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm1, _ := newTestPipeManager(cfg, false, 12345)
	pm2, _ := newTestPipeManager(cfg, false, 12345)

	for i := 0; i < 20; i++ {
		now := testEpoch.Add(time.Duration(i) * cfg.Pipes.SpawnDelay)
		pm1.Tick(now)
		pm2.Tick(now)
	}

	p1, p2 := pm1.Pipes(), pm2.Pipes()
	if len(p1) != len(p2) {
		t.Fatalf("pipe counts differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if p1[i].Dims != p2[i].Dims {
			t.Errorf("pipe %d differs: %+v vs %+v", i, p1[i].Dims, p2[i].Dims)
		}
	}
}

func TestPipeManagerPrunesOffScreen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm, _ := newTestPipeManager(cfg, false, 1)

	// 1000 px takes 7.5s at the default speed. Pruning only happens on
	// spawn ticks, so a pipe may linger up to one spawn delay past -100.
	limit := -100 - cfg.Pipes.ScrollSpeed*(cfg.Pipes.SpawnDelay+2*tickStep).Seconds()
	for i := 0; i <= 60*20; i++ {
		pm.Tick(testEpoch.Add(time.Duration(i) * tickStep))
		for _, p := range pm.Pipes() {
			if p.Upper().X < limit {
				t.Fatalf("tick %d: pipe at x=%g was never pruned", i, p.Upper().X)
			}
		}
	}
	if n := len(pm.Pipes()); n > 7 {
		t.Errorf("live pipes = %d, want at most 7", n)
	}
}

func TestPipeManagerNoOffScreenPipesAfterSpawnTick(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)

	var now time.Time
	for i := 0; i < 60*20; i++ {
		now = testEpoch.Add(time.Duration(i) * tickStep)
		pm.Tick(now)
		if !pm.lastSpawn.Equal(now) {
			continue
		}
		for _, p := range pm.Pipes() {
			if p.IsOffScreen() {
				t.Fatalf("tick %d: off-screen pipe survived a spawn tick", i)
			}
		}
	}
}

func TestPipeManagerNextUnscored(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)
	if pm.NextUnscored() != nil {
		t.Error("empty manager should have no unscored pipe")
	}

	pm.Tick(testEpoch)
	pm.Tick(testEpoch.Add(1400 * time.Millisecond))
	first, second := pm.Pipes()[0], pm.Pipes()[1]

	if pm.NextUnscored() != first {
		t.Error("earliest pipe should be next")
	}
	first.Scored = true
	if pm.NextUnscored() != second {
		t.Error("second pipe should be next once the first is scored")
	}
	second.Scored = true
	if pm.NextUnscored() != nil {
		t.Error("no unscored pipe should remain")
	}
}

func TestPipeManagerIntersectsWith(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm, _ := newTestPipeManager(cfg, false, 1)

	pm.Tick(testEpoch)
	pm.Tick(testEpoch.Add(time.Millisecond))
	upper := pm.Pipes()[0].Upper()

	if !pm.IntersectsWith(core.NewBox(upper.X, upper.Y, 1, 1)) {
		t.Error("box inside the upper pipe should intersect")
	}
	if pm.IntersectsWith(core.NewBox(0, 0, 10, 10)) {
		t.Error("box far from every pipe should not intersect")
	}
}

func TestPipeManagerRemoveAll(t *testing.T) {
	pm, _ := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)
	for i := 0; i < 5; i++ {
		pm.Tick(testEpoch.Add(time.Duration(i) * 1400 * time.Millisecond))
	}
	lastSpawn := pm.lastSpawn

	pm.RemoveAll()

	if len(pm.Pipes()) != 0 {
		t.Errorf("pipes after RemoveAll = %d, want 0", len(pm.Pipes()))
	}
	if !pm.lastSpawn.Equal(lastSpawn) {
		t.Error("RemoveAll should not touch the spawn timer")
	}
}

func TestPipeManagerFollowsTrack(t *testing.T) {
	pm, track := newTestPipeManager(config.DefaultFlappyConfig(), false, 1)

	pm.Tick(testEpoch)
	pm.Tick(testEpoch.Add(750 * time.Millisecond))
	x := pm.Pipes()[0].Upper().X

	track.Pause(testEpoch.Add(750 * time.Millisecond))
	pm.Tick(testEpoch.Add(time.Second))
	if got := pm.Pipes()[0].Upper().X; got != x {
		t.Errorf("pipe moved while the track was paused: %g -> %g", x, got)
	}
}
