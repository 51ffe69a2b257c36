// Package config provides YAML-based game configuration loading for the
// playfield, the fixed rules and the level table.
package config

import (
	"errors"
	"fmt"
)

// OdysseyConfig contains all configuration for the game.
type OdysseyConfig struct {
	Playfield Playfield     `yaml:"playfield"`
	Rules     Rules         `yaml:"rules"`
	Palette   []string      `yaml:"palette"`
	Levels    []LevelConfig `yaml:"levels"`
}

// Playfield defines the grid geometry, in playfield units.
type Playfield struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"`
}

// Rules defines the fixed gameplay constants.
type Rules struct {
	FruitReward            int `yaml:"fruit_reward"`
	BossSize               int `yaml:"boss_size"`
	CountdownSeconds       int `yaml:"countdown_seconds"`
	FruitPlacementAttempts int `yaml:"fruit_placement_attempts"`
}

// LevelConfig is one row of the level table.
// Levels are numbered by their position in the table, starting at 1.
type LevelConfig struct {
	Name          string `yaml:"name"`
	RequiredFruit int    `yaml:"required_fruit"`
	IntervalMS    int    `yaml:"interval_ms"`
	Boss          bool   `yaml:"boss"`
}

// Cols returns the number of grid columns.
func (p Playfield) Cols() int {
	return p.Width / p.CellSize
}

// Rows returns the number of grid rows.
func (p Playfield) Rows() int {
	return p.Height / p.CellSize
}

// Validate checks the configuration for values the game cannot run with.
func (c OdysseyConfig) Validate() error {
	p := c.Playfield
	if p.CellSize <= 0 {
		return errors.New("config: cell_size must be positive")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New("config: playfield width and height must be positive")
	}
	if p.Width%p.CellSize != 0 || p.Height%p.CellSize != 0 {
		return fmt.Errorf("config: playfield %dx%d is not a multiple of cell_size %d", p.Width, p.Height, p.CellSize)
	}
	if p.StartX%p.CellSize != 0 || p.StartY%p.CellSize != 0 {
		return fmt.Errorf("config: start (%d,%d) is not aligned to cell_size %d", p.StartX, p.StartY, p.CellSize)
	}
	if p.StartX < 0 || p.StartX >= p.Width || p.StartY < 0 || p.StartY >= p.Height {
		return fmt.Errorf("config: start (%d,%d) is outside the playfield", p.StartX, p.StartY)
	}

	r := c.Rules
	if r.FruitReward < 0 {
		return errors.New("config: fruit_reward must not be negative")
	}
	if r.BossSize < p.CellSize || r.BossSize%p.CellSize != 0 {
		return fmt.Errorf("config: boss_size %d must be a positive multiple of cell_size %d", r.BossSize, p.CellSize)
	}
	if r.BossSize > p.Width || r.BossSize > p.Height {
		return fmt.Errorf("config: boss_size %d does not fit the playfield", r.BossSize)
	}
	if r.CountdownSeconds < 0 {
		return errors.New("config: countdown_seconds must not be negative")
	}
	if r.FruitPlacementAttempts <= 0 {
		return errors.New("config: fruit_placement_attempts must be positive")
	}

	if len(c.Palette) == 0 {
		return errors.New("config: palette must not be empty")
	}
	if len(c.Levels) == 0 {
		return errors.New("config: level table must not be empty")
	}
	for i, lvl := range c.Levels {
		if lvl.RequiredFruit <= 0 {
			return fmt.Errorf("config: level %d: required_fruit must be positive", i+1)
		}
		if lvl.IntervalMS <= 0 {
			return fmt.Errorf("config: level %d: interval_ms must be positive", i+1)
		}
	}
	return nil
}
