// Package config loads the dashrun application configuration from YAML.
// Gameplay tuning is fixed in the runner; this covers hosts and plumbing.
package config

import "time"

// AppConfig is the root of the YAML configuration file.
type AppConfig struct {
	Runtime RuntimeConfig `yaml:"runtime"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
}

// RuntimeConfig controls the host tick loop.
type RuntimeConfig struct {
	TickRate int   `yaml:"tick_rate"`
	Seed     int64 `yaml:"seed"`
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig configures the SSH host.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WindowConfig configures the desktop window host.
type WindowConfig struct {
	Scale float64 `yaml:"scale"`
	Title string  `yaml:"title"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}
