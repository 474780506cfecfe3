package storage

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestHighScoresMemoryOnly(t *testing.T) {
	h := NewHighScores(nil, nil)

	if h.HighScore() != 0 {
		t.Errorf("initial high score = %d, want 0", h.HighScore())
	}
	h.SetHighScore(7)
	if h.HighScore() != 7 {
		t.Errorf("high score = %d, want 7", h.HighScore())
	}
}

func TestHighScoresPersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	h := NewHighScores(store, log.New(io.Discard))
	h.SetHighScore(42)

	// A second session sees the stored value
	other := NewHighScores(store, log.New(io.Discard))
	if other.HighScore() != 42 {
		t.Errorf("shared high score = %d, want 42", other.HighScore())
	}
}

func TestHighScoresDegradesOnFailure(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetHighScore(15); err != nil {
		t.Fatal(err)
	}

	h := NewHighScores(store, log.New(io.Discard))
	if h.HighScore() != 15 {
		t.Fatalf("high score = %d, want 15", h.HighScore())
	}

	store.Close()

	// Reads fall back to the last known value, writes stay in memory
	if h.HighScore() != 15 {
		t.Errorf("high score after close = %d, want 15", h.HighScore())
	}
	h.SetHighScore(16)
	if h.HighScore() != 16 {
		t.Errorf("high score after failed write = %d, want 16", h.HighScore())
	}
}
