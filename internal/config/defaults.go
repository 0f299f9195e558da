package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dashrun.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
		Storage: StorageConfig{
			Path: "~/.dashrun/runs.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Window: WindowConfig{
			Scale: 1,
			Title: "Dash Runner",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}
