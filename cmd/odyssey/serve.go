package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-odyssey/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetrics     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Snake Odyssey SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own independent game. Runs are stored
per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/odyssey_host_key

Examples:
  odyssey serve                           # Listen on :23234 with auto-generated key
  odyssey serve --ssh :2222               # Listen on port 2222
  odyssey serve --metrics :9090           # Expose Prometheus metrics on /metrics
  odyssey serve --db ./odyssey.db         # Use specific database

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetrics, "metrics", "", "Prometheus metrics address (host:port), disabled when empty")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	game, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:        flagSSHAddr,
		HostKeyPath:    flagHostKey,
		IdleTimeout:    time.Duration(flagIdleTimeout) * time.Minute,
		MetricsAddress: flagMetrics,
		Game:           game,
	}

	var server *tui.SSHServer
	store, err := openStore()
	if err != nil {
		logger.Warn("runs will not be saved", "error", err)
		server, err = tui.NewSSHServer(cfg, nil, logger)
	} else {
		defer store.Close()
		server, err = tui.NewSSHServer(cfg, store, logger)
	}
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	host, port := server.HostPort()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Snake Odyssey SSH server on %s\n", server.Addr())
	fmt.Fprintf(out, "Connect with: ssh -t %s -p %s\n", host, port)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
