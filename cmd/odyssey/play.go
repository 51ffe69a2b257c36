package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-odyssey/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Snake Maze Odyssey in this terminal.

Controls:
  Arrows/WASD  - Steer (reversing into yourself is ignored)
  Enter/Space  - Start (disabled while a game runs)
  Ctrl+S       - Save a screenshot of the playfield
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Logs are written to ~/.arcade/odyssey.log while playing.

Examples:
  odyssey play
  odyssey play --seed 42
  odyssey play --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.ErrNoTTY
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
		Player: os.Getenv("USER"),
	}

	store, err := openStore()
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		logger.Warn("runs will not be saved", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Info("session started", "seed", flagSeed, "levels", len(cfg.Levels))
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "odyssey.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
