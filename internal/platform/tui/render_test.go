package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-odyssey/internal/config"
	"github.com/vovakirdan/snake-odyssey/internal/core"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(config.DefaultOdysseyConfig().Playfield)
	assert.Equal(t, 40, c.Screen().Width())
	assert.Equal(t, 20, c.Screen().Height())
}

func TestCanvasFillCell(t *testing.T) {
	c := NewCanvas(config.DefaultOdysseyConfig().Playfield)
	c.Fill(core.NewRect(160, 160, 20, 20), core.ColorRed)

	s := c.Screen()
	assert.Equal(t, fillRune, s.Get(16, 8))
	assert.Equal(t, fillRune, s.Get(17, 8))
	assert.Equal(t, emptyRune, s.Get(18, 8))
	assert.Equal(t, emptyRune, s.Get(15, 8))
	assert.Equal(t, core.ColorRed, s.GetCell(16, 8).Color)
}

func TestCanvasFillBossAndClip(t *testing.T) {
	c := NewCanvas(config.DefaultOdysseyConfig().Playfield)
	c.Fill(core.NewRect(380, 380, 40, 40), core.ColorMagenta)

	s := c.Screen()
	assert.Equal(t, fillRune, s.Get(39, 19))
	assert.Equal(t, fillRune, s.Get(38, 19))
	assert.Equal(t, emptyRune, s.Get(37, 19))

	c.Clear()
	assert.Equal(t, strings.Repeat(" ", 40), s.Row(19))
}

func TestCanvasFillUnaligned(t *testing.T) {
	c := NewCanvas(config.DefaultOdysseyConfig().Playfield)
	// A 40x40 box at (110,110) touches cells 5..7 on both axes.
	c.Fill(core.NewRect(110, 110, 40, 40), core.ColorMagenta)

	s := c.Screen()
	assert.Equal(t, emptyRune, s.Get(9, 5))
	assert.Equal(t, fillRune, s.Get(10, 5))
	assert.Equal(t, fillRune, s.Get(15, 7))
	assert.Equal(t, emptyRune, s.Get(16, 7))
	assert.Equal(t, emptyRune, s.Get(10, 8))
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, 'c', core.ColorCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "c")
}
