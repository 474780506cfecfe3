// Package flappy implements the Flappy Bird simulation: bird physics,
// pipe generation, collision, scoring and the game state machine.
// It draws nothing and plays nothing itself; renderers read a Snapshot and
// audio and persistence are injected collaborators.
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Options are fixed for the lifetime of a Game.
type Options struct {
	Debug    bool // Draw collision boxes and state in the renderer
	EasyMode bool // Wider pipe gaps
}

// Deps are the collaborators a Game calls into. Nil fields get defaults.
type Deps struct {
	Audio  AudioPlayer
	Scores HighScoreStore
	Clock  Clock
	Rand   *rand.Rand
	Logger *log.Logger
}

// Game owns the bird, land and pipes and drives the state machine.
// It is not safe for concurrent use; one goroutine must own it.
type Game struct {
	cfg  config.FlappyConfig
	opts Options

	audio  AudioPlayer
	scores HighScoreStore
	clock  Clock
	logger *log.Logger

	bird     *Bird
	land     *Land
	pipes    *PipeManager
	track    *Track
	timeline Timeline

	state        State
	currentScore int
	highScore    int
	medal        Medal

	looping   bool   // Simulation loop running
	loopEpoch uint64 // Bumped every time the loop starts
	run       int    // Runs started since construction

	splashVisible     bool
	scoreboardVisible bool
	scoreboardLeaving bool
	replayVisible     bool
}

// New creates a game in the Loading state. Call Splash to show the splash
// screen. It fails only if the configuration is invalid.
func New(cfg config.FlappyConfig, opts Options, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}
	if deps.Scores == nil {
		deps.Scores = &MemoryHighScore{}
	}
	if deps.Clock == nil {
		deps.Clock = SystemClock{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	fa := cfg.Layout.FlightArea
	flightArea := core.NewBox(fa.X, fa.Y, fa.Width, fa.Height)
	track := NewTrack(cfg.Pipes.ScrollSpeed, deps.Clock.Now())

	g := &Game{
		cfg:    cfg,
		opts:   opts,
		audio:  deps.Audio,
		scores: deps.Scores,
		clock:  deps.Clock,
		logger: deps.Logger,
		bird: NewBird(FlyingProperties{
			Gravity:      cfg.Physics.Gravity,
			JumpVelocity: cfg.Physics.JumpVelocity,
			FlightArea:   flightArea,
		}, cfg.Bird, deps.Audio),
		land:  NewLand(flightArea, cfg.Layout.LandHeight),
		pipes: NewPipeManager(cfg, opts.EasyMode, track, deps.Rand, deps.Logger),
		track: track,
		state: StateLoading,
	}
	g.highScore = g.scores.HighScore()
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Splash shows the splash screen and waits for the first touch.
func (g *Game) Splash() {
	g.splashVisible = true
	g.audio.Play(CueSwoosh)
	g.setState(StateSplashScreen)
}

// ScreenTouched handles a touch, click or space press. keyboard reports
// whether it came from a key; on the score screen only keys replay.
func (g *Game) ScreenTouched(keyboard bool) {
	switch {
	case g.state == StatePlaying:
		g.bird.Jump()
	case g.state == StateSplashScreen:
		g.start()
	case g.state == StateScoreScreen && keyboard:
		g.reset()
	default:
		g.logger.Debug("touch ignored", "state", g.state, "keyboard", keyboard)
	}
}

// Replay handles the replay control. It only acts on the score screen.
func (g *Game) Replay() {
	if g.state != StateScoreScreen {
		g.logger.Debug("replay ignored", "state", g.state)
		return
	}
	g.reset()
}

// Tick runs one fixed simulation step. It does nothing unless the game is
// playing and the loop is running.
func (g *Game) Tick() {
	if g.state != StatePlaying || !g.looping {
		return
	}

	now := g.clock.Now()
	g.bird.Tick()
	g.pipes.Tick(now)

	birdBox := g.bird.Box()
	if p := g.pipes.NextUnscored(); p != nil && p.HasCrossed(birdBox) {
		p.Scored = true
		g.score()
	}

	if g.pipes.IntersectsWith(birdBox) || g.land.IntersectsWith(birdBox) {
		g.die(now)
	}
}

// Advance runs every timed step that is due. The presentation driver
// calls it once per frame.
func (g *Game) Advance() {
	g.timeline.Advance(g.clock.Now())
}

// start begins a run from the splash screen.
func (g *Game) start() {
	g.stopLoop()
	g.splashVisible = false
	g.setState(StatePlaying)
	g.run++
	g.loopEpoch++
	g.looping = true
	g.logger.Debug("loop started", "epoch", g.loopEpoch, "run", g.run)

	// Every run opens with a jump.
	g.bird.Jump()
}

func (g *Game) stopLoop() {
	if g.looping {
		g.looping = false
		g.logger.Debug("loop stopped", "epoch", g.loopEpoch)
	}
}

// die stops the simulation and plays the death and scoreboard reveal.
func (g *Game) die(now time.Time) {
	g.stopLoop()
	g.setState(StatePlayerDying)
	g.track.Pause(now)

	steps := g.bird.Die(g.cfg.Timing)
	steps = append(steps,
		Step{Name: "dead", Run: func() {
			g.setState(StatePlayerDead)
		}},
		Step{After: g.cfg.Timing.DeadDelay, Name: "scoreboard", Run: func() {
			g.audio.Play(CueSwoosh)
			g.scoreboardVisible = true
		}},
		Step{After: g.cfg.Timing.ScoreboardDelay, Name: "replay", Run: func() {
			g.audio.Play(CueSwoosh)
			g.replayVisible = true
			g.medal = MedalFor(g.currentScore)
			if g.medal != MedalNone {
				g.logger.Debug("medal won", "medal", g.medal, "score", g.currentScore)
			}
		}},
		Step{After: g.cfg.Timing.ReplayDelay, Name: "score-screen", Run: func() {
			g.setState(StateScoreScreen)
		}},
	)
	if err := g.timeline.Start(now, steps...); err != nil {
		g.logger.Error("death sequence not started", "err", err)
	}
}

// reset slides the scoreboard away and returns to the splash screen.
func (g *Game) reset() {
	g.setState(StateLoading)
	g.audio.Play(CueSwoosh)
	g.scoreboardLeaving = true

	err := g.timeline.Start(g.clock.Now(), Step{
		After: g.cfg.Timing.ResetDelay,
		Name:  "reset",
		Run: func() {
			g.scoreboardVisible = false
			g.scoreboardLeaving = false
			g.replayVisible = false
			g.medal = MedalNone

			g.pipes.RemoveAll()
			g.bird.Reset()
			g.setScore(0)
			g.track.Resume(g.clock.Now())

			g.Splash()
		},
	})
	if err != nil {
		g.logger.Error("reset not started", "err", err)
	}
}

func (g *Game) score() {
	g.logger.Debug("score")
	g.audio.Play(CueScore)
	g.setScore(g.currentScore + 1)

	if g.currentScore > g.highScore {
		g.logger.Debug("new high score", "score", g.currentScore)
		g.setHighScore(g.currentScore)
	}
}

func (g *Game) setState(s State) {
	g.logger.Debug("changing state", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) setScore(score int) {
	g.currentScore = score
}

func (g *Game) setHighScore(score int) {
	g.highScore = score
	g.scores.SetHighScore(score)
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Score returns the current run's score.
func (g *Game) Score() int { return g.currentScore }

// HighScore returns the best score seen.
func (g *Game) HighScore() int { return g.highScore }

// Medal returns the medal awarded for the last run, once revealed.
func (g *Game) Medal() Medal { return g.medal }

// Looping reports whether the simulation loop should be driven.
func (g *Game) Looping() bool { return g.looping }

// LoopEpoch identifies the current loop. Tick messages from older epochs
// must be dropped by the driver.
func (g *Game) LoopEpoch() uint64 { return g.loopEpoch }

// Run returns the number of runs started so far.
func (g *Game) Run() int { return g.run }

// EasyMode reports whether easy mode is on.
func (g *Game) EasyMode() bool { return g.opts.EasyMode }

// TickInterval returns the fixed simulation step.
func (g *Game) TickInterval() time.Duration {
	return time.Second / time.Duration(g.cfg.Physics.TickRate)
}

// FrameInterval returns the presentation refresh period.
func (g *Game) FrameInterval() time.Duration {
	return time.Second / time.Duration(g.cfg.Render.FrameRate)
}
