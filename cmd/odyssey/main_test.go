package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-odyssey/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagConfig, flagLogLevel, flagBoard, flagLimit = "", "info", false, 10
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNewLoggerLevel(t *testing.T) {
	flagLogLevel = "debug"
	defer func() { flagLogLevel = "info" }()

	logger, err := newLogger(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	flagLogLevel = "chatty"
	_, err = newLogger(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header, separator, 20 levels, blank line, milestones.
	require.Len(t, lines, 24)
	assert.Contains(t, out, "Milestones: [10 20]")
	assert.Contains(t, lines[11], "yes", "level 10 has a boss")
}

func TestLevelsCommandCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odyssey.yaml")
	yaml := `levels:
  - { name: "Only", required_fruit: 1, interval_ms: 90, boss: true }
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, err := execute(t, "levels", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Only")
	assert.Contains(t, out, "90ms")
	assert.Contains(t, out, "Milestones: [1]")
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.RunRecord{Player: "ann", Score: 1250, Level: 11, Outcome: "boss-collision"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err := execute(t, "scores", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1,250")
	assert.Contains(t, out, "boss-collision")
	assert.Contains(t, out, "ann")
}

func TestScoresCommandEmpty(t *testing.T) {
	out, err := execute(t, "scores", "--db", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}
