package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains the platform parameters a session starts with.
// The driver adapts its rendering to the screen size, runs its loops at
// the given rates and seeds pipe generation from Seed.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	FrameRate int   // Presentation frames per second (default 30)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		FrameRate: 30,
		Seed:      0, // 0 means use current time
	}
}

// Rand returns the random source for a session. Equal non-zero seeds give
// equal sequences; a zero seed is replaced by the current time.
func (c RuntimeConfig) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
