package core

// Color is a foreground color for a screen cell.
// The terminal host maps each value to a lipgloss style.
type Color uint8

// Palette used by the runner views.
const (
	ColorDefault Color = iota
	ColorGround
	ColorPlayer
	ColorObstacle
	ColorHUD
	ColorOverlay
	ColorAccent
)
