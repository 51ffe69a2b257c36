package odyssey

import "github.com/vovakirdan/snake-odyssey/internal/core"

// Canvas is a drawable surface addressed in playfield units.
type Canvas interface {
	Clear()
	Fill(r core.Rect, c core.Color)
}

// Render draws the playfield: snake in the level color, fruit, then boss.
func (g *Game) Render(dst Canvas) {
	dst.Clear()

	cell := g.cfg.Playfield.CellSize
	for _, seg := range g.snake {
		dst.Fill(core.SquareAt(seg, cell), g.color)
	}
	if g.hasFruit {
		dst.Fill(core.SquareAt(g.fruit, cell), core.ColorRed)
	}
	if g.boss != nil {
		dst.Fill(g.boss.Rect(), core.ColorMagenta)
	}
}
