package odyssey

import "github.com/vovakirdan/snake-odyssey/internal/core"

// Tick is the scheduler entry point. It runs one simulation step, frozen
// while a countdown is active.
func (g *Game) Tick() StepResult {
	return g.Advance(g.Frozen())
}

// Frozen reports whether the simulation is suspended by a countdown.
func (g *Game) Frozen() bool {
	return g.countdown > 0
}

// Advance runs one simulation step. A frozen step, or a step outside the
// running phase, changes nothing.
func (g *Game) Advance(frozen bool) StepResult {
	if frozen || g.phase != PhaseRunning {
		return g.result()
	}
	g.tick++

	ate, placed := g.moveSnake()
	g.moveBoss()

	if cause := g.checkCollision(); cause != CauseNone {
		return g.Reset(cause)
	}
	if ate && !placed {
		// Nowhere left to put fruit: the snake fills the board.
		return g.End()
	}
	g.checkLevelAdvance()
	return g.result()
}

// moveSnake moves the snake one cell in the pending direction.
// ate reports whether the new head landed on the fruit; placed reports
// whether a new fruit could then be placed.
func (g *Game) moveSnake() (ate, placed bool) {
	g.direction = g.pending

	dx, dy := g.direction.Delta()
	cell := g.cfg.Playfield.CellSize
	newHead := g.snake[0].Add(dx*cell, dy*cell)

	g.snake = append([]core.Point{newHead}, g.snake...)

	if g.hasFruit && newHead == g.fruit {
		g.score += g.cfg.Rules.FruitReward
		g.fruitEaten++
		placed = g.placeFruit()
		g.emit(ScoreChanged{Score: g.score})
		g.emit(FruitEaten{
			Level:     g.level,
			Eaten:     g.fruitEaten,
			SnakeLen:  len(g.snake),
			NextFruit: g.fruit,
		})
		return true, placed
	}

	g.snake = g.snake[:len(g.snake)-1]
	return false, true
}

// placeFruit puts the fruit on a random cell not occupied by the snake.
// Random sampling is bounded; after that a free cell is picked from a full
// scan. Returns false when the board has no free cell.
func (g *Game) placeFruit() bool {
	cols, rows := g.cfg.Playfield.Cols(), g.cfg.Playfield.Rows()
	cell := g.cfg.Playfield.CellSize

	for range g.cfg.Rules.FruitPlacementAttempts {
		p := core.Point{X: g.rng.Intn(cols) * cell, Y: g.rng.Intn(rows) * cell}
		if !g.isSnakeAt(p) {
			g.fruit = p
			g.hasFruit = true
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		g.hasFruit = false
		return false
	}
	g.fruit = free[g.rng.Intn(len(free))]
	g.hasFruit = true
	return true
}

// freeCells collects every cell not covered by the snake.
func (g *Game) freeCells() []core.Point {
	cols, rows := g.cfg.Playfield.Cols(), g.cfg.Playfield.Rows()
	cell := g.cfg.Playfield.CellSize

	occupied := make(map[core.Point]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}

	var free []core.Point
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := core.Point{X: x * cell, Y: y * cell}
			if !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// checkLevelAdvance moves to the next level once enough fruit is eaten.
func (g *Game) checkLevelAdvance() {
	if g.fruitEaten < g.policy.Level(g.level).RequiredFruit {
		return
	}

	g.level++
	g.fruitEaten = 0

	if g.level > g.policy.Count() {
		g.End()
		return
	}
	if g.policy.IsMilestone(g.level) && g.cfg.Rules.CountdownSeconds > 0 {
		g.startCountdown(g.cfg.Rules.CountdownSeconds)
		return
	}
	g.applyLevel()
}

// applyLevel applies the current level's parameters: snake and boss reset,
// color, scheduler interval and, on milestone levels, a new boss.
func (g *Game) applyLevel() {
	lvl := g.policy.Level(g.level)

	g.resetSnake()
	g.boss = nil
	g.color = lvl.Color

	g.emit(SchedulerStarted{Interval: lvl.Interval})
	g.emit(LevelChanged{Level: lvl.Number, Name: lvl.Name})

	if lvl.HasBoss {
		g.spawnBoss()
		g.emit(BossSpawned{Pos: g.boss.Pos})
	}

	// The old fruit may sit on the start cell the snake was just moved to.
	if g.hasFruit && g.isSnakeAt(g.fruit) {
		g.placeFruit()
	}
}
