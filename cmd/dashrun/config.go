package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration file",
	Long: `Prints the built-in configuration as YAML. Save it to one of the
searched locations (~/.dashrun/config.yaml or ./configs/dashrun.yaml), or
pass it with --config, and edit it to change the defaults.

Examples:
  dashrun config > ~/.dashrun/config.yaml
  dashrun --config ./mine.yaml play`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
