package odyssey

import "github.com/vovakirdan/snake-odyssey/internal/core"

// Cause is the reason a game was reset.
type Cause string

const (
	// CauseNone means no fatal collision occurred
	CauseNone Cause = ""
	// CauseWall is when the head leaves the playfield
	CauseWall Cause = "wall-collision"
	// CauseSelf is when the head runs into the snake's own body
	CauseSelf Cause = "self-collision"
	// CauseBoss is when the head touches the boss
	CauseBoss Cause = "boss-collision"
)

// checkCollision returns the first fatal condition for the current head.
func (g *Game) checkCollision() Cause {
	head := g.snake[0]

	if g.outOfBounds(head) {
		return CauseWall
	}
	for _, seg := range g.snake[1:] {
		if seg == head {
			return CauseSelf
		}
	}
	if g.boss != nil && g.bossHits(head) {
		return CauseBoss
	}
	return CauseNone
}

func (g *Game) outOfBounds(p core.Point) bool {
	pf := g.cfg.Playfield
	return p.X < 0 || p.X >= pf.Width || p.Y < 0 || p.Y >= pf.Height
}

// bossHits reports whether the boss square overlaps the cell at p.
func (g *Game) bossHits(p core.Point) bool {
	return g.boss.Rect().Intersects(core.SquareAt(p, g.cfg.Playfield.CellSize))
}
