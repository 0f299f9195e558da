// dashrun is a one-button side-scrolling runner for the terminal, a native
// window, or SSH.
//
// Usage:
//
//	dashrun play             - Play in the terminal (--ui gui for a window)
//	dashrun menu             - Title menu with play and high scores
//	dashrun scores           - Print run history
//	dashrun serve            - Start SSH server for remote play
//	dashrun list             - List registered games
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.dashrun/config.yaml, ./configs/dashrun.yaml)
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for obstacle sizes
//	--db <path>        - Set database path (default: ~/.dashrun/runs.db)
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/dashrun/internal/games/dash"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// appConfig is loaded before every command runs.
	appConfig config.AppConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dashrun",
	Short: "Dash Runner - jump the obstacles, survive the ramp",
	Long: `Dash Runner is a one-button side-scrolling runner. Jump over
obstacles while the scroll speed keeps rising; the first hit ends the run.

Available commands:
  play     - Play a run in the terminal or a window
  menu     - Title menu
  scores   - Show run history
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  dashrun play
  dashrun play --ui gui
  dashrun menu
  dashrun serve --ssh :2222
  dashrun scores --limit 20`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dashrun/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, then applies flags the user set.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Runtime.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}
