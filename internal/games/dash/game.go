// Package dash adapts the runner simulation to the character-grid hosts.
// It maps platform actions onto the run and projects run snapshots onto a
// core.Screen.
package dash

import (
	"fmt"
	"time"

	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/registry"
	"github.com/vovakirdan/dashrun/internal/runner"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
	GroundChar   = '═'
	DirtChar     = '░'
)

// Game implements registry.Game around a runner.Driver.
type Game struct {
	driver  *runner.Driver
	runtime core.RuntimeConfig
}

// New creates a game with the default runtime config.
func New() *Game {
	g := &Game{}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dash"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dash Runner"
}

// Reset discards the current run and returns to the idle title state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var opts []runner.Option
	if runtime.Seed != 0 {
		opts = append(opts, runner.WithSeed(runtime.Seed))
	}
	g.driver = runner.NewDriver(runner.New(opts...))
}

// Driver exposes the underlying driver.
func (g *Game) Driver() *runner.Driver {
	return g.driver
}

// Step applies this frame's actions, then advances the run to now.
func (g *Game) Step(in core.InputFrame, now time.Time) core.StepResult {
	res, _ := g.driver.Apply(in, now)
	return core.StepResult{
		State: g.State(),
		Ended: res.Collided,
	}
}

// State returns the host-facing summary of the run.
func (g *Game) State() core.GameState {
	run := g.driver.Run()
	return core.GameState{
		Score:    run.Score(),
		Running:  run.Running(),
		GameOver: run.Phase() == runner.PhaseEnded,
		Elapsed:  run.Elapsed(),
		Speed:    run.Speed(),
		Dodged:   run.Cleared(),
	}
}

// Render draws the current snapshot to the screen. Row 0 holds the HUD and
// the remaining rows hold the scaled playfield.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.driver.Run().Snapshot()
	pr := newProjection(dst.Width(), dst.Height(), snap)

	groundRow := pr.row(snap.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGround)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.ColorGround)
	}

	for _, o := range snap.Obstacles {
		x, y, w, h := pr.cells(o)
		dst.FillRect(x, y, w, h, ObstacleChar, core.ColorObstacle)
	}

	x, y, w, h := pr.cells(snap.Player)
	dst.FillRect(x, y, w, h, PlayerChar, core.ColorPlayer)

	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(2, 0, scoreText, core.ColorHUD)
	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText, core.ColorHUD)

	switch snap.Phase {
	case runner.PhaseIdle:
		drawCenteredMessage(dst, "DASH RUNNER", "Space to jump  |  Enter to start")
	case runner.PhaseEnded:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorOverlay)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorOverlay)

	dst.DrawTextCentered(boxY+1, title, core.ColorAccent)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorOverlay)
}

func init() {
	registry.Register("dash", func() registry.Game {
		return New()
	})
}
