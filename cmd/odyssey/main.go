// odyssey is Snake Maze Odyssey: a level-based snake game for the terminal.
//
// Usage:
//
//	odyssey play             - Play in this terminal
//	odyssey serve            - Start SSH server for remote play
//	odyssey scores           - Show the best runs
//	odyssey levels           - Print the level table
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search ~/.arcade/configs, ./configs)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/odyssey.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "odyssey",
	Short: "Snake Maze Odyssey - a level-based snake game in your terminal",
	Long: `Snake Maze Odyssey: eat fruit to grow, clear twenty levels of rising
speed and survive the bosses waiting on levels 10 and 20.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs
  levels   - Print the level table

Examples:
  odyssey play
  odyssey play --seed 42
  odyssey serve --ssh :2222 --metrics :9090
  odyssey scores --board`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/odyssey.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "odyssey",
		Level:           level,
	}), nil
}

// loadConfig loads the game configuration honoring --config.
func loadConfig() (config.OdysseyConfig, error) {
	cfg, err := config.LoadOdyssey(flagConfig)
	if err != nil {
		return config.OdysseyConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openStore opens the runs database. A failure is returned to the caller,
// which decides whether to continue without persistence.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening runs database: %w", err)
	}
	return store, nil
}
