// Package logging builds the charmbracelet loggers used by every host.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dashrun/internal/config"
)

// New returns a logger writing to cfg.File when set, otherwise to fallback.
// The returned close function releases the log file, if any.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }

	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
		}
		out = f
		closeFn = f.Close
	}

	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// NewOrFallback is New for hosts that keep running without their log file.
// When the file cannot be opened the logger writes to fallback instead and
// records the failure there. A nil fallback discards.
func NewOrFallback(cfg config.LogConfig, prefix string, fallback io.Writer) (*log.Logger, func() error) {
	logger, closeFn, err := New(cfg, prefix, fallback)
	if err == nil {
		return logger, closeFn
	}

	noFile := cfg
	noFile.File = ""
	if _, perr := log.ParseLevel(noFile.Level); perr != nil {
		noFile.Level = "info"
	}
	logger, closeFn, _ = New(noFile, prefix, fallback)
	logger.Warn("could not open log file", "error", err)
	return logger, closeFn
}
