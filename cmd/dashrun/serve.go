package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dashrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the title menu and its own
run. Runs played over SSH are not added to the local history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dashrun/host_key

Examples:
  dashrun serve                           # Listen on :23234 with auto-generated key
  dashrun serve --ssh :2222               # Listen on port 2222
  dashrun serve --host-key ./my_host_key  # Use specific host key
  dashrun serve --idle-timeout 0          # Never disconnect idle users

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		appConfig.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		appConfig.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		appConfig.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	cfg := tui.SSHServerConfigFrom(appConfig)
	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting dashrun SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
