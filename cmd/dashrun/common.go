package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dashrun/internal/core"
	"github.com/vovakirdan/dashrun/internal/logging"
	"github.com/vovakirdan/dashrun/internal/storage"
)

// runtimeConfig builds the game runtime config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.Runtime.TickRate
	cfg.Seed = appConfig.Runtime.Seed
	return cfg
}

// newLogger builds the app logger. Output goes to the configured file, or to
// fallback when none is set or it cannot be opened (nil discards). Terminal
// hosts pass nil since bubbletea owns the screen.
func newLogger(fallback io.Writer) (*log.Logger, func() error) {
	return logging.NewOrFallback(appConfig.Log, "dashrun", fallback)
}

// openStore opens run history. Failures degrade to play without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		logger.Warn("could not open run history, runs will not be saved", "error", err)
		return nil
	}
	return store
}
