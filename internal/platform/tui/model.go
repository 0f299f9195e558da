package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/registry"
	"github.com/vovakirdan/dashrun/internal/storage"
)

// hostName tags runs recorded from the terminal.
const hostName = "tui"

// GameModel is the Bubble Tea model that plays one game. Input collected
// between ticks is applied on the next tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store // nil disables run history
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A nil store disables run history and
// a nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game to its title state and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The playfield is scaled on render, so a resize keeps the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Every bound key is consumed here.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.gameState.Running {
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the game to now and records a finished run.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasRunning := m.gameState.Running

	result := m.game.Step(m.inputFrame, now)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !wasRunning && m.gameState.Running {
		m.logger.Debug("run started", "game", m.game.ID())
	}
	if result.Ended {
		m.recordRun(result.State)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun logs the finished run and stores it when history is enabled.
// Storage failures are logged and play continues.
func (m GameModel) recordRun(st core.GameState) {
	m.logger.Info("run ended",
		"score", st.Score,
		"elapsed", st.Elapsed.Round(time.Millisecond),
		"dodged", st.Dodged,
	)

	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.RunRecord{
		Score:     st.Score,
		Duration:  st.Elapsed,
		PeakSpeed: st.Speed,
		Dodged:    st.Dodged,
		Host:      hostName,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || (m.standalone && m.backToMenu) {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the player leaves. quit reports
// whether they asked to quit entirely rather than go back.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.IsQuitting(), nil
	}
	return true, nil
}
