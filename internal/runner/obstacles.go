package runner

import "github.com/vovakirdan/dashrun/internal/core"

// Obstacle is a box resting on the ground line.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// NewObstacle creates an obstacle at x whose bottom edge sits on the ground.
func NewObstacle(x, width, height float64) Obstacle {
	return Obstacle{
		X:      x,
		Y:      GroundY - height,
		Width:  width,
		Height: height,
	}
}

// Rect returns the collision box for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// offscreen reports whether the right edge has passed the removal margin.
func (o Obstacle) offscreen() bool {
	return o.X+o.Width < -RemovalMargin
}

// ObstacleSet holds the active obstacles of a run.
type ObstacleSet struct {
	items []Obstacle
}

// Add appends an obstacle.
func (s *ObstacleSet) Add(o Obstacle) {
	s.items = append(s.items, o)
}

// Clear removes every obstacle.
func (s *ObstacleSet) Clear() {
	s.items = s.items[:0]
}

// Len returns the number of active obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// All returns a copy of the active obstacles.
func (s *ObstacleSet) All() []Obstacle {
	out := make([]Obstacle, len(s.items))
	copy(out, s.items)
	return out
}

// Advance scrolls every obstacle left by speed, then drops the ones that
// left the field. Returns how many were dropped.
func (s *ObstacleSet) Advance(speed float64) int {
	for i := range s.items {
		s.items[i].X -= speed
	}

	kept := s.items[:0]
	for _, o := range s.items {
		if !o.offscreen() {
			kept = append(kept, o)
		}
	}
	removed := len(s.items) - len(kept)
	s.items = kept
	return removed
}

// Collides reports whether r overlaps any active obstacle.
func (s *ObstacleSet) Collides(r core.Rect) bool {
	for _, o := range s.items {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}
