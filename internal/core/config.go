package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
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

// GameState is the host-facing summary of a game.
type GameState struct {
	Score    int           // Floored score
	Running  bool          // A run is in progress
	GameOver bool          // The last run ended in a collision
	Elapsed  time.Duration // Time spent in the current or last run
	Speed    float64       // Current scroll speed
	Dodged   int           // Obstacles that scrolled off screen
}

// StepResult is returned by Game.Step() after each host tick.
type StepResult struct {
	State GameState
	Ended bool // The run ended during this tick
}
