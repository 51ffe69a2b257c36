package odyssey

// Snapshot captures the game state for determinism testing and debug logs.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Score      int
	FruitEaten int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FruitX     int
	FruitY     int
	HasBoss    bool
	BossX      int
	BossY      int
	Countdown  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Level:      g.level,
		Score:      g.score,
		FruitEaten: g.fruitEaten,
		SnakeLen:   len(g.snake),
		HeadX:      g.snake[0].X,
		HeadY:      g.snake[0].Y,
		Dir:        g.direction,
		FruitX:     g.fruit.X,
		FruitY:     g.fruit.Y,
		Countdown:  g.countdown,
	}
	if g.boss != nil {
		s.HasBoss = true
		s.BossX = g.boss.Pos.X
		s.BossY = g.boss.Pos.Y
	}
	return s
}
