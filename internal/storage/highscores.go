package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// HighScores backs the game's high score with a Store. Every failure is
// logged and absorbed: the last known value is kept in memory, so a
// broken or missing database degrades to a session-only high score.
type HighScores struct {
	store  *Store
	logger *log.Logger
	score  int
}

var _ flappy.HighScoreStore = (*HighScores)(nil)

// NewHighScores wraps store. A nil store keeps scores in memory only.
func NewHighScores(store *Store, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScores{store: store, logger: logger}
}

// HighScore returns the persisted high score, or the in-memory one if the
// store cannot be read.
func (h *HighScores) HighScore() int {
	if h.store == nil {
		return h.score
	}
	score, err := h.store.HighScore()
	if err != nil {
		h.logger.Warn("high score unavailable, using session value", "err", err)
		return h.score
	}
	if score > h.score {
		h.score = score
	}
	return h.score
}

// SetHighScore records a new high score.
func (h *HighScores) SetHighScore(score int) {
	h.score = score
	if h.store == nil {
		return
	}
	if err := h.store.SetHighScore(score); err != nil {
		h.logger.Warn("high score not saved", "score", score, "err", err)
	}
}
