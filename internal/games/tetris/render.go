package tetris

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	cellWidth = 2 // screen columns per well column
	hudGap    = 2
	hudWidth  = 20
)

var kindColors = [tetris.NumKinds]core.Color{
	tetris.KindI: core.ColorCyan,
	tetris.KindJ: core.ColorBlue,
	tetris.KindL: core.ColorOrange,
	tetris.KindO: core.ColorYellow,
	tetris.KindS: core.ColorGreen,
	tetris.KindT: core.ColorMagenta,
	tetris.KindZ: core.ColorRed,
}

var hudHelp = []string{
	"←/→  move",
	"Z/X  rotate",
	"↓    soft drop",
	"Spc  hard drop",
	"P    pause",
	"Q    quit",
}

// layout places the well box and the HUD column on a screen.
type layout struct {
	well core.Rect // including the border
	hudX int
	fits bool
}

func (g *Game) layoutFor(w, h int) layout {
	e := g.engine
	wellW := e.Cols()*cellWidth + 2
	wellH := e.Rows() + 2
	totalW := wellW + hudGap + hudWidth

	outer := core.CenteredIn(core.NewRect(0, 0, w, h), totalW, wellH)
	return layout{
		well: core.NewRect(outer.X, outer.Y, wellW, wellH),
		hudX: outer.X + wellW + hudGap,
		fits: w >= totalW && h >= wellH,
	}
}

func (g *Game) tooSmall() bool {
	if g.screenW == 0 && g.screenH == 0 {
		return false // headless
	}
	return !g.layoutFor(g.screenW, g.screenH).fits
}

// Render draws the well, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	lay := g.layoutFor(dst.Width(), dst.Height())
	if !lay.fits {
		renderOverlay(dst, dst.Bounds(), "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst, lay.well)
	g.renderHUD(dst, lay.hudX, lay.well.Y)

	switch {
	case g.engine.Won():
		renderOverlay(dst, lay.well, "You Win!", fmt.Sprintf("Score %d", g.engine.Score()))
	case g.engine.GameOver():
		renderOverlay(dst, lay.well, "Game Over", "R to restart")
	case g.paused:
		renderOverlay(dst, lay.well, "Paused", "P to resume")
	}
}

func (g *Game) renderWell(dst *core.Screen, box core.Rect) {
	e := g.engine
	dst.DrawBoxColor(box, core.ColorGray)

	active, hasActive := e.Active()
	flashing := e.State() == tetris.StateFlashing

	for r := 0; r < e.Rows(); r++ {
		// Row 0 is the bottom of the well.
		y := box.Bottom() - 2 - r
		full := flashing && rowFull(e, r)
		for c := 0; c < e.Cols(); c++ {
			x := box.X + 1 + c*cellWidth
			if !e.Occupied(r, c) {
				dst.SetColor(x+1, y, '·', core.ColorGray)
				continue
			}
			color := g.lockedColor
			switch {
			case hasActive && active.Occupies(r, c):
				color = kindColors[active.Kind]
			case full:
				color = g.flashColor
			}
			dst.SetColor(x, y, '█', color)
			dst.SetColor(x+1, y, '█', color)
		}
	}
}

func rowFull(e *tetris.Engine, r int) bool {
	for c := 0; c < e.Cols(); c++ {
		if !e.Occupied(r, c) {
			return false
		}
	}
	return true
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	e := g.engine

	dst.DrawTextColor(x, y, strings.ToUpper(g.Title()), core.ColorBrightCyan)
	y += 2

	level := fmt.Sprintf("%d", e.Level())
	if e.Mode() == tetris.ModeMarathon {
		level = fmt.Sprintf("%d/%d", min(e.Level(), tetris.MaxLevel), tetris.MaxLevel)
	}
	for _, line := range [][2]string{
		{"Score", fmt.Sprintf("%d", e.Score())},
		{"Level", level},
		{"Lines", fmt.Sprintf("%d", e.Lines())},
	} {
		dst.DrawTextColor(x, y, line[0], core.ColorGray)
		dst.DrawTextColor(x+7, y, line[1], core.ColorBrightWhite)
		y++
	}
	y++

	if active, ok := e.Active(); ok {
		dst.DrawTextColor(x, y, "Piece", core.ColorGray)
		dst.DrawTextColor(x+7, y, active.Kind.String(), kindColors[active.Kind])
	}
	y++

	switch e.State() {
	case tetris.StateFlashing:
		dst.DrawTextColor(x, y, "Clear!", core.ColorBrightYellow)
	case tetris.StateFilling:
		dst.DrawTextColor(x, y, "Topped out", core.ColorBrightRed)
	}
	y += 2

	for _, line := range hudHelp {
		dst.DrawTextColor(x, y, line, core.ColorGray)
		y++
	}
}

// renderOverlay draws a two-line message box centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	textW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2))
	box := core.CenteredIn(area, textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightYellow)
	drawCentered(dst, box, box.Y+3, line2, core.ColorWhite)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	dst.DrawTextColor(x, y, text, c)
}
