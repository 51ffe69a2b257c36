package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-odyssey/internal/games/odyssey"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long:  `Shows every level with its fruit target, tick interval, boss and color.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	policy := odyssey.NewPolicy(cfg)

	maxName := len("Name")
	for _, l := range policy.Levels() {
		maxName = max(maxName, len(l.Name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-5s  %-*s  %-5s  %-8s  %-4s  %s\n", "Level", maxName, "Name", "Fruit", "Interval", "Boss", "Color")
	fmt.Fprintf(out, "  %-5s  %-*s  %-5s  %-8s  %-4s  %s\n", "-----", maxName, strings.Repeat("-", 4), "-----", "--------", "----", "-----")
	for _, l := range policy.Levels() {
		boss := ""
		if l.HasBoss {
			boss = "yes"
		}
		fmt.Fprintf(out, "  %-5d  %-*s  %-5d  %-8s  %-4s  %s\n",
			l.Number, maxName, l.Name, l.RequiredFruit, l.Interval, boss, l.Color)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Milestones: %v\n", policy.Milestones())
	return nil
}
