package odyssey

import (
	"time"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
)

// LevelParams holds the parameters of a single level.
type LevelParams struct {
	Number        int // 1-indexed
	Name          string
	RequiredFruit int           // Fruit to eat before advancing
	Interval      time.Duration // Scheduler tick period
	HasBoss       bool          // Milestone level with a pursuing boss
	Color         core.Color    // Snake color
}

// Policy maps level numbers to their parameters.
// It is built once from the level table and never mutated.
type Policy struct {
	levels []LevelParams
}

// NewPolicy builds the level policy from configuration.
// The palette is indexed by level-1 and clamped to its last entry.
func NewPolicy(cfg config.OdysseyConfig) *Policy {
	levels := make([]LevelParams, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		color := core.ColorDefault
		if len(cfg.Palette) > 0 {
			color = core.Color(cfg.Palette[core.Clamp(i, 0, len(cfg.Palette)-1)])
		}
		levels[i] = LevelParams{
			Number:        i + 1,
			Name:          lc.Name,
			RequiredFruit: lc.RequiredFruit,
			Interval:      time.Duration(lc.IntervalMS) * time.Millisecond,
			HasBoss:       lc.Boss,
			Color:         color,
		}
	}
	return &Policy{levels: levels}
}

// Count returns the number of levels; the last level number is Count().
func (p *Policy) Count() int {
	return len(p.levels)
}

// Level returns the parameters of level n.
// Out-of-range numbers are clamped to the first or last level.
func (p *Policy) Level(n int) LevelParams {
	if len(p.levels) == 0 {
		return LevelParams{}
	}
	return p.levels[core.Clamp(n, 1, len(p.levels))-1]
}

// IsMilestone reports whether entering level n introduces a boss.
func (p *Policy) IsMilestone(n int) bool {
	if n < 1 || n > len(p.levels) {
		return false
	}
	return p.levels[n-1].HasBoss
}

// Milestones returns the level numbers that introduce a boss, ascending.
func (p *Policy) Milestones() []int {
	var out []int
	for _, l := range p.levels {
		if l.HasBoss {
			out = append(out, l.Number)
		}
	}
	return out
}

// Levels returns a copy of the whole table.
func (p *Policy) Levels() []LevelParams {
	out := make([]LevelParams, len(p.levels))
	copy(out, p.levels)
	return out
}
