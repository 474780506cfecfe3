package flappy

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const tickStep = time.Second / 60

// recordingAudio remembers every cue played.
type recordingAudio struct {
	cues []Cue
}

func (r *recordingAudio) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *recordingAudio) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (r *recordingAudio) last() Cue {
	if len(r.cues) == 0 {
		return Cue(-1)
	}
	return r.cues[len(r.cues)-1]
}

// hoverConfig keeps the bird still at its start position inside a gap
// wide enough that it never touches a pipe, with a fast scroll.
func hoverConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.JumpVelocity = 0
	cfg.Pipes.MinHeight = 10
	cfg.Pipes.Gap = 400
	cfg.Pipes.EasyGap = 400
	cfg.Pipes.ScrollSpeed = 1000
	return cfg
}

type testGame struct {
	*Game
	clock  *ManualClock
	audio  *recordingAudio
	scores *MemoryHighScore
}

func newTestGame(t *testing.T, cfg config.FlappyConfig, opts Options) *testGame {
	t.Helper()
	tg := &testGame{
		clock:  NewManualClock(testEpoch),
		audio:  &recordingAudio{},
		scores: &MemoryHighScore{},
	}
	g, err := New(cfg, opts, Deps{
		Audio:  tg.audio,
		Scores: tg.scores,
		Clock:  tg.clock,
		Rand:   rand.New(rand.NewSource(42)),
		Logger: log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	tg.Game = g
	return tg
}

// step advances virtual time by one tick and runs both drivers.
func (tg *testGame) step() {
	tg.clock.Advance(tickStep)
	tg.Tick()
	tg.Advance()
}

// wait advances virtual time and runs due timed steps.
func (tg *testGame) wait(d time.Duration) {
	tg.clock.Advance(d)
	tg.Advance()
}

// playUntilDeath starts a run and ticks until the bird dies.
func (tg *testGame) playUntilDeath(t *testing.T) {
	t.Helper()
	tg.Splash()
	tg.ScreenTouched(true)
	for i := 0; i < 1000 && tg.State() == StatePlaying; i++ {
		tg.clock.Advance(tickStep)
		tg.Tick()
	}
	if tg.State() != StatePlayerDying {
		t.Fatalf("bird should have died, state = %s", tg.State())
	}
}
