package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-odyssey/internal/games/odyssey"
	"github.com/vovakirdan/snake-odyssey/internal/platform/tui"
)

var (
	flagBoard bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs with their level reached and how they ended.

Examples:
  odyssey scores
  odyssey scores --limit 25
  odyssey scores --board     # interactive table`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", odyssey.Title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'odyssey play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-15s  %-12s  %s\n", "Rank", "Score", "Level", "Outcome", "Player", "When")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-15s  %-12s  %s\n", "----", "-----", "-----", "-------", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %-15s  %-12s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Level, r.Outcome, player, humanize.Time(r.CreatedAt))
	}

	stats, err := store.GetStats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %s over %s runs, %d won, last played %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.Runs)),
			stats.Victories,
			humanize.Time(stats.LastPlayed))
	}
	return nil
}
