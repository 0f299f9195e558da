package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/platform/gui"
	"github.com/vovakirdan/dashrun/internal/platform/tui"
	"github.com/vovakirdan/dashrun/internal/registry"
)

const defaultGame = "dash"

var flagUI string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in the terminal (default) or in a native window.

Controls:
  Space/Up/W, click  - Jump
  Enter/S            - Start a run
  R                  - Restart (after game over)
  B/Esc              - Leave (when no run is active)
  Q/Ctrl+C           - Quit

In the window a click or tap jumps; only Enter and R start a run.

Examples:
  dashrun play
  dashrun play --seed 42
  dashrun play --ui gui
  dashrun play --ui gui --config ./dashrun.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagUI, "ui", "tui", "Host: tui (terminal) or gui (window)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	switch flagUI {
	case "tui":
		return playTerminal()
	case "gui":
		return playWindow()
	default:
		return fmt.Errorf("unknown --ui %q (want tui or gui)", flagUI)
	}
}

// playTerminal runs the terminal host. The alt screen owns stdout, so logs go
// to the configured file or nowhere.
func playTerminal() error {
	logger, closeLog := newLogger(nil)
	defer closeLog()

	game, err := registry.Create(defaultGame)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playWindow runs the window host with logs on stderr.
func playWindow() error {
	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return gui.Run(appConfig, store, logger)
}
