package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/platform/tui"
	"github.com/vovakirdan/dashrun/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a run with B/Esc returns you to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  dashrun menu
  dashrun menu --fps 30
  dashrun menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(nil)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			game, err := registry.Create(menuResult.GameID)
			if err != nil {
				logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
				continue
			}
			quit, err := tui.Run(game, store, cfg, logger)
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
			if quit {
				return nil
			}

		default:
			return nil
		}
	}
}
