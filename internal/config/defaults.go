package config

import (
	_ "embed"
	"strconv"
)

//go:embed defaults/odyssey.yaml
var defaultOdysseyYAML []byte

// DefaultPalette is the reference snake color palette, one entry per level.
var DefaultPalette = []string{
	"#FF0000", "#FFA500", "#FFFF00", "#00FF00", "#0000FF",
	"#4B0082", "#9400D3", "#00FFFF", "#FF1493", "#FFD700",
	"#800000", "#FF69B4", "#9ACD32", "#87CEEB", "#008080",
	"#7B68EE", "#008B8B", "#228B22", "#FF4500", "#FFDF00",
}

// DefaultOdysseyConfig returns the reference configuration.
// It mirrors defaults/odyssey.yaml and is used when the embedded file
// cannot be parsed.
func DefaultOdysseyConfig() OdysseyConfig {
	levels := make([]LevelConfig, 20)
	for i := range levels {
		n := i + 1
		lvl := LevelConfig{
			Name:          "Level " + strconv.Itoa(n),
			RequiredFruit: 4,
			IntervalMS:    120,
		}
		switch n {
		case 6, 7:
			lvl.RequiredFruit = 2
			lvl.IntervalMS = 150
		case 8, 9:
			lvl.RequiredFruit = 2
			lvl.IntervalMS = 100
		case 10, 20:
			lvl.IntervalMS = 100
			lvl.Boss = true
		}
		levels[i] = lvl
	}

	palette := make([]string, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return OdysseyConfig{
		Playfield: Playfield{
			Width:    400,
			Height:   400,
			CellSize: 20,
			StartX:   160,
			StartY:   160,
		},
		Rules: Rules{
			FruitReward:            10,
			BossSize:               40,
			CountdownSeconds:       3,
			FruitPlacementAttempts: 100,
		},
		Palette: palette,
		Levels:  levels,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultOdysseyYAML
}
