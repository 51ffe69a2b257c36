package odyssey

import "github.com/vovakirdan/snake-odyssey/internal/core"

// spawnAttempts bounds the random search for a boss cell.
const spawnAttempts = 100

// Boss is the pursuing hazard of milestone levels.
type Boss struct {
	Pos  core.Point // Top-left corner
	Size int        // Side length in playfield units
}

// Rect returns the boss bounding box.
func (b Boss) Rect() core.Rect {
	return core.SquareAt(b.Pos, b.Size)
}

// spawnBoss places a boss on a random grid-aligned cell. The boss lies fully
// inside the playfield and clear of the snake and of the cell the head is
// about to enter, so a new level never opens with a collision.
func (g *Game) spawnBoss() {
	size := g.cfg.Rules.BossSize
	for range spawnAttempts {
		p := g.randomBossCell(size)
		if g.bossSpotClear(p, size) {
			g.boss = &Boss{Pos: p, Size: size}
			return
		}
	}

	// Fall back to the first clear spot in scan order.
	cell := g.cfg.Playfield.CellSize
	pf := g.cfg.Playfield
	for y := 0; y+size <= pf.Height; y += cell {
		for x := 0; x+size <= pf.Width; x += cell {
			p := core.Point{X: x, Y: y}
			if g.bossSpotClear(p, size) {
				g.boss = &Boss{Pos: p, Size: size}
				return
			}
		}
	}

	// No clear spot exists; take any in-bounds cell.
	g.boss = &Boss{Pos: g.randomBossCell(size), Size: size}
}

// randomBossCell picks a grid-aligned corner keeping a boss of the given
// size inside the playfield.
func (g *Game) randomBossCell(size int) core.Point {
	pf := g.cfg.Playfield
	cols := max((pf.Width-size)/pf.CellSize+1, 1)
	rows := max((pf.Height-size)/pf.CellSize+1, 1)
	return core.Point{
		X: g.rng.Intn(cols) * pf.CellSize,
		Y: g.rng.Intn(rows) * pf.CellSize,
	}
}

func (g *Game) bossSpotClear(p core.Point, size int) bool {
	box := core.SquareAt(p, size)
	cell := g.cfg.Playfield.CellSize

	for _, seg := range g.snake {
		if box.Intersects(core.SquareAt(seg, cell)) {
			return false
		}
	}
	dx, dy := g.pending.Delta()
	next := g.snake[0].Add(dx*cell, dy*cell)
	return !box.Intersects(core.SquareAt(next, cell))
}

// moveBoss advances the boss one cell toward the head on each axis
// independently, so it may move diagonally.
func (g *Game) moveBoss() {
	if g.boss == nil {
		return
	}
	head := g.snake[0]
	cell := g.cfg.Playfield.CellSize
	g.boss.Pos = g.boss.Pos.Add(
		core.Step(g.boss.Pos.X, head.X)*cell,
		core.Step(g.boss.Pos.Y, head.Y)*cell,
	)
}
