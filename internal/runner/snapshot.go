package runner

import (
	"time"

	"github.com/vovakirdan/dashrun/internal/core"
)

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Phase     Phase
	Player    core.Rect
	Grounded  bool
	Obstacles []core.Rect
	FieldW    float64
	FieldH    float64
	GroundY   float64
	Score     int
	Speed     float64
	Elapsed   time.Duration
}

// Snapshot captures the current state for rendering.
func (r *Run) Snapshot() Snapshot {
	obs := make([]core.Rect, 0, r.obstacles.Len())
	for _, o := range r.obstacles.items {
		obs = append(obs, o.Rect())
	}

	return Snapshot{
		Phase:     r.phase,
		Player:    r.player.Rect(),
		Grounded:  r.player.Grounded,
		Obstacles: obs,
		FieldW:    FieldWidth,
		FieldH:    FieldHeight,
		GroundY:   GroundY,
		Score:     r.Score(),
		Speed:     r.pace.speed,
		Elapsed:   r.elapsed,
	}
}
