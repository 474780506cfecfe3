package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// PipeBoxes are the two halves of a pipe.
type PipeBoxes struct {
	Upper core.Box
	Lower core.Box
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State     State
	Score     int
	HighScore int
	Medal     Medal
	Run       int

	BirdPosition float64
	BirdRotation float64
	BirdBox      core.Box
	Pipes        []PipeBoxes // Laid out pipes only, in spawn order
	LandBox      core.Box
	FlightArea   core.Box
	Scrolled     float64 // Ambient scroll distance

	SplashVisible     bool
	ScoreboardVisible bool
	ScoreboardLeaving bool
	ReplayVisible     bool
	Paused            bool   // Ambient scroll frozen
	NextStep          string // Next timed step of a running sequence, empty when idle

	Debug    bool
	EasyMode bool
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeBoxes, 0, len(g.pipes.Pipes()))
	for _, p := range g.pipes.Pipes() {
		if p.Upper().IsZero() {
			continue
		}
		pipes = append(pipes, PipeBoxes{Upper: p.Upper(), Lower: p.Lower()})
	}

	nextStep, _, _ := g.timeline.Next()

	return Snapshot{
		State:             g.state,
		Score:             g.currentScore,
		HighScore:         g.highScore,
		Medal:             g.medal,
		Run:               g.run,
		BirdPosition:      g.bird.Position(),
		BirdRotation:      g.bird.Rotation(),
		BirdBox:           g.bird.Box(),
		Pipes:             pipes,
		LandBox:           g.land.Box(),
		FlightArea:        g.bird.props.FlightArea,
		Scrolled:          g.track.Distance(g.clock.Now()),
		SplashVisible:     g.splashVisible,
		ScoreboardVisible: g.scoreboardVisible,
		ScoreboardLeaving: g.scoreboardLeaving,
		ReplayVisible:     g.replayVisible,
		Paused:            g.track.Paused(),
		NextStep:          nextStep,
		Debug:             g.opts.Debug,
		EasyMode:          g.opts.EasyMode,
	}
}
