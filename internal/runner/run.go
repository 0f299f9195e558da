// Package runner implements the obstacle runner simulation: player physics,
// the speed and score ramp, obstacle spawning, scrolling and collision.
//
// A Run is a plain value owned by its host. It never schedules itself; hosts
// call Step with the time elapsed since the previous call.
package runner

import (
	"math/rand"
	"time"
)

// Phase is the run state machine.
type Phase int

const (
	PhaseIdle    Phase = iota // Nothing moving, no obstacles
	PhaseRunning              // Being stepped
	PhaseEnded                // Collided; waits for Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Phase    Phase
	Score    int
	Spawned  bool // An obstacle was created this step
	Removed  int  // Obstacles that left the field this step
	Collided bool // The run ended this step
}

// Option configures a Run.
type Option func(*Run)

// WithRand draws obstacle sizes from src.
func WithRand(src RandSource) Option {
	return func(r *Run) {
		r.rng = src
	}
}

// WithSeed seeds the obstacle RNG. A zero seed keeps the clock-based default.
func WithSeed(seed int64) Option {
	return func(r *Run) {
		if seed != 0 {
			r.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// Run is one player's game: the player, the active obstacles and the
// difficulty ramp.
type Run struct {
	phase     Phase
	player    Player
	obstacles ObstacleSet
	spawner   *Spawner
	pace      pace
	rng       RandSource
	elapsed   time.Duration
	spawned   int
	cleared   int
}

// New creates a run in the Idle phase.
func New(opts ...Option) *Run {
	r := &Run{}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = newClockRand()
	}
	r.spawner = NewSpawner(r.rng)
	r.reset()
	return r
}

// reset restores every per-run value to its initial state.
func (r *Run) reset() {
	r.player = newPlayer()
	r.obstacles.Clear()
	r.spawner.Reset()
	r.pace = newPace()
	r.elapsed = 0
	r.spawned = 0
	r.cleared = 0
}

// Start resets the run and enters Running. Valid from any phase.
func (r *Run) Start() {
	r.reset()
	r.phase = PhaseRunning
}

// Step advances the run by elapsed. Negative durations count as zero.
// Outside the Running phase Step does nothing.
func (r *Run) Step(elapsed time.Duration) StepResult {
	if r.phase != PhaseRunning {
		return StepResult{Phase: r.phase, Score: r.Score()}
	}
	if elapsed < 0 {
		elapsed = 0
	}

	r.elapsed += elapsed
	r.pace.advance(millis(elapsed))
	r.player.fall(GroundY)

	var res StepResult
	if ob, ok := r.spawner.Advance(elapsed); ok {
		r.obstacles.Add(ob)
		r.spawned++
		res.Spawned = true
	}

	res.Removed = r.obstacles.Advance(r.pace.speed)
	r.cleared += res.Removed

	if r.obstacles.Collides(r.player.Rect()) {
		r.phase = PhaseEnded
		res.Collided = true
	}

	res.Phase = r.phase
	res.Score = r.Score()
	return res
}

// Jump makes a grounded player jump while the run is active. In any other
// situation it does nothing and returns false.
func (r *Run) Jump() bool {
	if r.phase != PhaseRunning {
		return false
	}
	return r.player.jump()
}

// Phase returns the current phase.
func (r *Run) Phase() Phase { return r.phase }

// Running reports whether the run is being stepped.
func (r *Run) Running() bool { return r.phase == PhaseRunning }

// Score returns the floored score.
func (r *Run) Score() int { return r.pace.floorScore() }

// Speed returns the current scroll speed.
func (r *Run) Speed() float64 { return r.pace.speed }

// Elapsed returns the time stepped since Start.
func (r *Run) Elapsed() time.Duration { return r.elapsed }

// Player returns a copy of the player.
func (r *Run) Player() Player { return r.player }

// Obstacles returns a copy of the active obstacles.
func (r *Run) Obstacles() []Obstacle { return r.obstacles.All() }

// Spawned returns how many obstacles were created this run.
func (r *Run) Spawned() int { return r.spawned }

// Cleared returns how many obstacles scrolled off the field this run.
func (r *Run) Cleared() int { return r.cleared }
