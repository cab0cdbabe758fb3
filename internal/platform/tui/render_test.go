package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(1, 0, "tetris")
	s.DrawText(0, 2, "go")

	assert.Equal(t, " tetris\n\ngo", RenderScreen(s))
}

func TestRenderScreenKeepsColoredCells(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "##", core.ColorCyan)
	s.DrawText(2, 0, "ab")
	s.SetColor(5, 0, '█', core.ColorRed)

	out := RenderScreen(s)
	assert.Contains(t, out, "##")
	assert.Contains(t, out, "ab")
	assert.Contains(t, out, "█")
	assert.False(t, strings.Contains(out, "\n"))
	// Styled cells survive trailing-blank trimming.
	assert.True(t, strings.Index(out, "█") > strings.Index(out, "ab"))
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}
