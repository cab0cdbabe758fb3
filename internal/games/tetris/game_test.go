package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func newGame(t *testing.T, g *Game, seed int64, w, h int) *Game {
	t.Helper()
	cfg := config.DefaultTetrisConfig()
	opts, err := cfg.ToOptions()
	require.NoError(t, err)
	opts.Mode = g.mode
	g.ResetWith(core.RuntimeConfig{Seed: seed, ScreenW: w, ScreenH: h}, cfg, opts)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDMarathon, IDEndless} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
	assert.Equal(t, "Tetris (Endless)", registry.Title(IDEndless))
}

func TestEndlessMode(t *testing.T) {
	g := newGame(t, NewEndless(), 1, 80, 24)
	assert.Equal(t, tetris.ModeEndless, g.Engine().Mode())
}

func TestDeterminism(t *testing.T) {
	script := []core.Action{
		core.ActionMoveLeft, core.ActionRotateRight, core.ActionNone,
		core.ActionSoftDrop, core.ActionHardDrop, core.ActionMoveRight,
		core.ActionNone, core.ActionRotateLeft, core.ActionHardDrop,
	}
	run := func() Snapshot {
		g := newGame(t, New(), 12345, 80, 24)
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%5 == 0 {
				in.Set(script[(i/5)%len(script)])
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, uint64(3000), s1.Tick)
}

func TestSinglePressMovesOnce(t *testing.T) {
	g := newGame(t, New(), 1, 80, 24)
	start := g.Snapshot().Col

	g.Step(frame(core.ActionMoveLeft))
	assert.Equal(t, start-1, g.Snapshot().Col)

	// Still held, but the move cooldown is longer than the hold window.
	for i := 0; i < 6; i++ {
		g.Step(frame())
	}
	assert.Equal(t, start-1, g.Snapshot().Col)

	g.Step(frame(core.ActionMoveLeft))
	assert.Equal(t, start-2, g.Snapshot().Col)
}

func TestHardDropPressDropsOnePiece(t *testing.T) {
	g := newGame(t, New(), 1, 80, 24)

	g.Step(frame(core.ActionHardDrop))
	board := g.Snapshot().Board
	assert.Contains(t, board, "#")

	// Autorepeat keeps the button held; no further drop.
	for i := 0; i < 4; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	assert.Equal(t, strings.Count(board, "#"), strings.Count(g.Snapshot().Board, "#"))
}

func TestPause(t *testing.T) {
	g := newGame(t, New(), 1, 80, 24)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.True(t, res.Changed)
	ticks := g.Engine().Ticks()

	for i := 0; i < 100; i++ {
		g.Step(frame(core.ActionHardDrop))
	}
	assert.Equal(t, ticks, g.Engine().Ticks(), "engine must not advance while paused")

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newGame(t, New(), 3, 80, 24)
	e := g.Engine()

	g.Step(frame(core.ActionRestart))
	require.Same(t, e, g.Engine(), "restart is ignored while playing")

	for i := 0; i < 5000 && !e.GameOver(); i++ {
		if e.State() == tetris.StatePlaying {
			e.HardDrop()
		} else {
			g.Step(frame())
		}
	}
	require.True(t, e.GameOver())
	assert.False(t, g.State().Won)

	res := g.Step(frame(core.ActionRestart))
	assert.True(t, res.Changed)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.NotSame(t, e, g.Engine())
}

func TestTooSmallHoldsTheGame(t *testing.T) {
	g := newGame(t, New(), 1, 30, 10)
	for i := 0; i < 10; i++ {
		g.Step(frame())
	}
	assert.Equal(t, uint64(0), g.Engine().Ticks())

	g.Resize(80, 24)
	g.Step(frame())
	assert.Equal(t, uint64(1), g.Engine().Ticks())

	s := core.NewScreen(30, 10)
	g.Render(s)
	assert.Contains(t, s.String(), "Window too small")
}

func TestRenderWellAndHUD(t *testing.T) {
	g := newGame(t, New(), 1, 80, 24)
	e := g.Engine()
	require.True(t, e.Fall())
	require.True(t, e.Fall())

	s := core.NewScreen(80, 24)
	g.Render(s)
	text := s.String()
	assert.Contains(t, text, "TETRIS")
	assert.Contains(t, text, "Score")
	assert.Contains(t, text, "1/10")

	lay := g.layoutFor(80, 24)
	p, ok := e.Active()
	require.True(t, ok)
	found := 0
	for r := 0; r < e.Rows(); r++ {
		for c := 0; c < e.Cols(); c++ {
			if !p.Occupies(r, c) {
				continue
			}
			cell := s.GetCell(lay.well.X+1+c*cellWidth, lay.well.Bottom()-2-r)
			assert.Equal(t, '█', cell.Rune)
			assert.Equal(t, kindColors[p.Kind], cell.Color)
			found++
		}
	}
	assert.Equal(t, 4, found)
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(t, New(), 1, 80, 24)
	g.Step(frame(core.ActionPause))

	s := core.NewScreen(80, 24)
	g.Render(s)
	assert.Contains(t, s.String(), "Paused")
}

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(3)

	held := h.update(frame(core.ActionSoftDrop, core.ActionRotateLeft))
	assert.True(t, held.Has(tetris.ButtonSoftDrop|tetris.ButtonRotateLeft))

	h.update(frame())
	held = h.update(frame())
	assert.True(t, held.Has(tetris.ButtonSoftDrop))
	held = h.update(frame())
	assert.Equal(t, tetris.ButtonNone, held)

	h.update(frame(core.ActionMoveRight))
	h.release()
	assert.Equal(t, tetris.ButtonNone, h.update(frame()))
}
