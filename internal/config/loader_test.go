package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v\nDefault() = %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
runtime:
  tick_rate: 30
ssh:
  idle_timeout: 90s
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Runtime.TickRate)
	}
	if cfg.SSH.IdleTimeout != 90*time.Second {
		t.Errorf("IdleTimeout = %v, expected 90s", cfg.SSH.IdleTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, expected debug", cfg.Log.Level)
	}
	// Untouched sections keep their defaults
	if cfg.Storage.Path != Default().Storage.Path || cfg.Window.Title != "Dash Runner" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "runtime: [not, a, map")
	if _, err := Load(broken); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "runtime:\n  tick_rate: 0\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, expected embedded 60", cfg.Runtime.TickRate)
	}

	// Local configs directory
	writeFile(t, filepath.Join(work, "configs", "dashrun.yaml"), "runtime:\n  tick_rate: 45\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 45 {
		t.Errorf("TickRate = %d, expected local 45", cfg.Runtime.TickRate)
	}

	// User config wins over local
	writeFile(t, filepath.Join(home, ".dashrun", "config.yaml"), "runtime:\n  tick_rate: 120\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 120 {
		t.Errorf("TickRate = %d, expected user 120", cfg.Runtime.TickRate)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		ok     bool
	}{
		{"default", func(*AppConfig) {}, true},
		{"zero tick rate", func(c *AppConfig) { c.Runtime.TickRate = 0 }, false},
		{"negative scale", func(c *AppConfig) { c.Window.Scale = -1 }, false},
		{"negative idle timeout", func(c *AppConfig) { c.SSH.IdleTimeout = -time.Second }, false},
		{"unknown log level", func(c *AppConfig) { c.Log.Level = "loud" }, false},
		{"warn level", func(c *AppConfig) { c.Log.Level = "warn" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.dashrun/runs.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".dashrun", "runs.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/runs.db"); got != "/tmp/runs.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
