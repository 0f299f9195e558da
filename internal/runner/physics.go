package runner

import (
	"math"

	"github.com/vovakirdan/dashrun/internal/core"
)

// Player is the jumping rectangle. X never changes during a run.
type Player struct {
	X, Y          float64
	Width, Height float64
	VY            float64 // Vertical velocity, negative = up
	Grounded      bool
}

func newPlayer() Player {
	return Player{
		X:        PlayerX,
		Y:        GroundY - PlayerHeight,
		Width:    PlayerWidth,
		Height:   PlayerHeight,
		Grounded: true,
	}
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// fall integrates one step of gravity and clamps the player to the ground.
func (p *Player) fall(groundY float64) {
	p.VY += Gravity
	p.Y += p.VY

	if p.Y+p.Height >= groundY {
		p.Y = groundY - p.Height
		p.VY = 0
		p.Grounded = true
	} else {
		p.Grounded = false
	}
}

// jump launches the player if it is standing on the ground.
func (p *Player) jump() bool {
	if !p.Grounded {
		return false
	}
	p.VY = JumpImpulse
	p.Grounded = false
	return true
}

// pace tracks the time-scaled quantities: scroll speed and score.
type pace struct {
	speed float64
	score float64
}

func newPace() pace {
	return pace{speed: BaseSpeed}
}

// advance ramps speed and score by ms milliseconds. Speed has no ceiling.
func (p *pace) advance(ms float64) {
	p.speed += ms * SpeedRamp
	p.score += ms * ScoreRate
}

// floorScore is the displayed score.
func (p pace) floorScore() int {
	return int(math.Floor(p.score))
}
