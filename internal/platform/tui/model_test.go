package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/games/dash"
	"github.com/vovakirdan/dashrun/internal/storage"
)

const frame = 16 * time.Millisecond

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 3
	m := NewGameModel(dash.New(), store, cfg, nil)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelStartAndJump(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))
	if !m.State().Running {
		t.Fatal("enter should start a run on the next tick")
	}

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(t0.Add(frame)))

	g := m.game.(*dash.Game)
	if g.Driver().Run().Player().Grounded {
		t.Error("mouse press should make the player jump")
	}
}

func TestGameModelBackIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(t0))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back must be ignored during a run")
	}
}

func TestGameModelBackWhenIdle(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave an idle game")
	}
	if m.IsQuitting() {
		t.Error("embedded model should not quit on back")
	}
}

func TestGameModelStandaloneBackIsNotQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m.standalone = true

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	gm := next.(GameModel)
	if cmd == nil {
		t.Fatal("back should end a standalone program")
	}
	if !gm.BackToMenu() || gm.IsQuitting() {
		t.Errorf("back: BackToMenu=%v IsQuitting=%v", gm.BackToMenu(), gm.IsQuitting())
	}
	if gm.View() != "" {
		t.Error("a program leaving for the menu should render nothing")
	}
}

func TestGameModelStandaloneQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m.standalone = true

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit, not go back")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestGameModelRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	now := t0
	for i := 0; i < 2000 && !m.State().GameOver; i++ {
		m = update(t, m, TickMsg(now))
		now = now.Add(frame)
	}
	if !m.State().GameOver {
		t.Fatal("run never ended")
	}

	// Ticks after the crash must not record the run again.
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(now))
		now = now.Add(frame)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Host != "tui" || runs[0].Score != m.State().Score {
		t.Errorf("recorded run = %+v, state = %+v", runs[0], m.State())
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 16})

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should include the HUD")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 16 {
		t.Errorf("view has %d lines, expected 16", lines)
	}
}
