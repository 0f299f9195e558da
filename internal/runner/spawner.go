package runner

import "time"

// Spawner emits one obstacle each time its accumulator passes SpawnInterval.
// The accumulator resets to zero on spawn, so a long frame never produces a
// burst of obstacles.
type Spawner struct {
	acc      time.Duration
	interval time.Duration
	rng      RandSource
}

// NewSpawner creates a spawner drawing obstacle sizes from rng.
func NewSpawner(rng RandSource) *Spawner {
	return &Spawner{
		interval: SpawnInterval,
		rng:      rng,
	}
}

// Reset zeroes the accumulator.
func (s *Spawner) Reset() {
	s.acc = 0
}

// Pending returns the time accumulated since the last spawn.
func (s *Spawner) Pending() time.Duration {
	return s.acc
}

// Advance adds elapsed to the accumulator and returns a new obstacle when
// the interval is exceeded.
func (s *Spawner) Advance(elapsed time.Duration) (Obstacle, bool) {
	if elapsed > 0 {
		s.acc += elapsed
	}
	if s.acc <= s.interval {
		return Obstacle{}, false
	}
	s.acc = 0
	return s.spawn(), true
}

func (s *Spawner) spawn() Obstacle {
	h := ObstacleMinSize + s.rng.Float64()*ObstacleSizeRange
	w := ObstacleMinSize + s.rng.Float64()*ObstacleSizeRange
	return NewObstacle(FieldWidth+SpawnMargin, w, h)
}
