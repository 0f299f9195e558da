package runner

import "time"

// Play field geometry, in world units. Y grows downward.
const (
	FieldWidth   = 800.0
	FieldHeight  = 220.0
	GroundMargin = 20.0
	GroundY      = FieldHeight - GroundMargin
)

// Player tuning.
const (
	PlayerX      = 80.0
	PlayerWidth  = 30.0
	PlayerHeight = 30.0
	Gravity      = 0.8 // added to VY every step, independent of elapsed time
	JumpImpulse  = -14.0
)

// Difficulty ramp. Rates are per millisecond of elapsed time.
const (
	BaseSpeed = 4.0 // world units per step
	SpeedRamp = 0.0008
	ScoreRate = 0.01
)

// Obstacle tuning.
const (
	SpawnInterval     = 1200 * time.Millisecond
	SpawnMargin       = 20.0 // spawn x = FieldWidth + SpawnMargin
	ObstacleMinSize   = 20.0
	ObstacleSizeRange = 40.0
	RemovalMargin     = 50.0 // removed once the right edge is left of -RemovalMargin
)

// millis converts a duration to fractional milliseconds.
func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
