package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains host settings passed to scenes at creation.
// Scenes never read the terminal or window directly; hosts fill this in.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (cells or pixels)
	ScreenH  int   // Host surface height (cells or pixels)
	TickRate int   // Frames per second driven by the host (default 60)
	Seed     int64 // RNG seed, 0 means seed from the current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FrameSeconds returns the duration of one frame in seconds.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// NewRand creates the random source scenes use, seeded from Seed.
func (c RuntimeConfig) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
