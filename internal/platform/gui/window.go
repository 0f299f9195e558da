// Package gui hosts the runner in a native window via Ebitengine.
// Ebitengine owns the frame loop; Update polls input and advances the run,
// Draw paints the latest snapshot at playfield resolution.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dashrun/internal/config"
	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/runner"
	"github.com/vovakirdan/dashrun/internal/storage"
)

// hostName tags runs recorded from the window.
const hostName = "gui"

var (
	colorBackground = color.RGBA{0x0b, 0x1d, 0x26, 0xff}
	colorGround     = color.RGBA{0x0a, 0x48, 0x60, 0xff}
	colorPlayer     = color.RGBA{0x00, 0xd1, 0xff, 0xff}
	colorObstacle   = color.RGBA{0xff, 0x6b, 0x6b, 0xff}
	colorHUDBox     = color.RGBA{0xff, 0xff, 0xff, 0x0f}
	colorShade      = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

// Window implements ebiten.Game around a runner.Driver.
type Window struct {
	driver  *runner.Driver
	store   *storage.Store // nil disables run history
	logger  *log.Logger
	now     func() time.Time
	touches []ebiten.TouchID
}

// NewWindow creates a window host. A seed of 0 keeps unseeded obstacles.
func NewWindow(seed int64, store *storage.Store, logger *log.Logger) *Window {
	var opts []runner.Option
	if seed != 0 {
		opts = append(opts, runner.WithSeed(seed))
	}

	return &Window{
		driver: runner.NewDriver(runner.New(opts...)),
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Update polls input and advances the run. Returning ebiten.Termination
// closes the window.
func (w *Window) Update() error {
	now := w.now()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := core.NewInputFrame()
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(core.ActionJump)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		in.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionJump)
	}
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	if len(w.touches) > 0 {
		in.Set(core.ActionJump)
	}

	res, stepped := w.driver.Apply(in, now)
	if stepped && res.Collided {
		w.recordRun()
	}
	return nil
}

// recordRun logs the finished run and stores it when history is enabled.
func (w *Window) recordRun() {
	run := w.driver.Run()
	w.logger.Info("run ended",
		"score", run.Score(),
		"elapsed", run.Elapsed().Round(time.Millisecond),
		"dodged", run.Cleared(),
	)

	if w.store == nil {
		return
	}

	_, err := w.store.SaveRun(storage.RunRecord{
		Score:     run.Score(),
		Duration:  run.Elapsed(),
		PeakSpeed: run.Speed(),
		Dodged:    run.Cleared(),
		Host:      hostName,
	})
	if err != nil {
		w.logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.driver.Run().Snapshot()

	screen.Fill(colorBackground)

	fillRect(screen, core.NewRect(0, snap.GroundY, snap.FieldW, snap.FieldH-snap.GroundY), colorGround)
	fillRect(screen, snap.Player, colorPlayer)
	for _, o := range snap.Obstacles {
		fillRect(screen, o, colorObstacle)
	}

	vector.DrawFilledRect(screen, 10, 10, 120, 28, colorHUDBox, false)
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, 18, 29, color.White)
	speed := fmt.Sprintf("Speed %.1f", snap.Speed)
	text.Draw(screen, speed, basicfont.Face7x13, int(snap.FieldW)-textWidth(speed)-18, 29, color.White)

	switch snap.Phase {
	case runner.PhaseIdle:
		drawOverlay(screen, snap, "Dash Runner", "Press Enter to start")
	case runner.PhaseEnded:
		drawOverlay(screen, snap, "Game Over", "Press R to try again")
	}
}

// Layout fixes the logical screen to the playfield size; Ebitengine scales
// it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(runner.FieldWidth), int(runner.FieldHeight)
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawOverlay(dst *ebiten.Image, snap runner.Snapshot, title, subtitle string) {
	vector.DrawFilledRect(dst, 0, 0, float32(snap.FieldW), float32(snap.FieldH), colorShade, false)

	cx := int(snap.FieldW) / 2
	cy := int(snap.FieldH) / 2
	text.Draw(dst, title, basicfont.Face7x13, cx-textWidth(title)/2, cy-10, color.White)
	text.Draw(dst, subtitle, basicfont.Face7x13, cx-textWidth(subtitle)/2, cy+20, color.White)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.AppConfig, store *storage.Store, logger *log.Logger) error {
	w := NewWindow(cfg.Runtime.Seed, store, logger)

	scale := cfg.Window.Scale
	ebiten.SetWindowSize(int(runner.FieldWidth*scale), int(runner.FieldHeight*scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Runtime.TickRate)

	logger.Debug("opening window", "scale", scale, "tps", cfg.Runtime.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
