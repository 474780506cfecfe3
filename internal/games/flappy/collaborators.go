package flappy

// Cue names a sound effect the game asks its audio player to play.
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueHit
	CueDie
	CueSwoosh
)

// Cues lists every cue in declaration order.
var Cues = []Cue{CueJump, CueScore, CueHit, CueDie, CueSwoosh}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CueDie:
		return "die"
	case CueSwoosh:
		return "swoosh"
	default:
		return "unknown"
	}
}

// AudioPlayer plays cues fire-and-forget. Play must not block.
type AudioPlayer interface {
	Play(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(Cue) {}

// HighScoreStore persists the best score across sessions.
// Implementations absorb their own failures and fall back to 0.
type HighScoreStore interface {
	HighScore() int
	SetHighScore(score int)
}

// MemoryHighScore keeps the high score for the lifetime of the process.
type MemoryHighScore struct {
	score int
}

// HighScore returns the stored score.
func (m *MemoryHighScore) HighScore() int { return m.score }

// SetHighScore replaces the stored score.
func (m *MemoryHighScore) SetHighScore(score int) { m.score = score }
