package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
)

// Terminal cells per playfield cell. Terminal glyphs are about twice as tall
// as wide, so each cell takes two columns and one row.
const (
	colsPerCell = 2
	rowsPerCell = 1
)

const (
	fillRune  = '█'
	emptyRune = ' '
)

// Canvas adapts a core.Screen to the game's playfield-unit drawing surface.
type Canvas struct {
	screen *core.Screen
	cell   int
}

// NewCanvas creates a canvas sized for the playfield.
func NewCanvas(pf config.Playfield) *Canvas {
	return &Canvas{
		screen: core.NewScreen(pf.Cols()*colsPerCell, pf.Rows()*rowsPerCell),
		cell:   pf.CellSize,
	}
}

// Clear blanks the canvas.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Fill paints a rectangle given in playfield units. Partial cells are
// covered fully; anything outside the playfield is clipped.
func (c *Canvas) Fill(r core.Rect, col core.Color) {
	x0 := r.X / c.cell
	y0 := r.Y / c.cell
	x1 := ceilDiv(r.Right(), c.cell)
	y1 := ceilDiv(r.Bottom(), c.cell)

	c.screen.FillRect(core.NewRect(
		x0*colsPerCell,
		y0*rowsPerCell,
		(x1-x0)*colsPerCell,
		(y1-y0)*rowsPerCell,
	), fillRune, col)
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyle(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// colorStyle maps a core.Color to a lipgloss style.
func colorStyle(c core.Color) lipgloss.Style {
	if c.IsDefault() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}
