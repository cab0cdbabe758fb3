package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// buttonActions lists the actions that map onto engine buttons.
var buttonActions = [...]struct {
	action core.Action
	button tetris.Buttons
}{
	{core.ActionMoveLeft, tetris.ButtonMoveLeft},
	{core.ActionMoveRight, tetris.ButtonMoveRight},
	{core.ActionRotateLeft, tetris.ButtonRotateLeft},
	{core.ActionRotateRight, tetris.ButtonRotateRight},
	{core.ActionSoftDrop, tetris.ButtonSoftDrop},
	{core.ActionHardDrop, tetris.ButtonHardDrop},
}

// holdTracker turns key presses into held buttons. A terminal reports a
// key once per press and then at the autorepeat rate, never its release,
// so a press keeps its button held for holdTicks ticks and every repeat
// restarts that window.
type holdTracker struct {
	holdTicks int
	left      [len(buttonActions)]int
}

func newHoldTracker(holdTicks int) holdTracker {
	return holdTracker{holdTicks: max(holdTicks, 1)}
}

// update registers this tick's presses and returns the held set.
func (h *holdTracker) update(in core.InputFrame) tetris.Buttons {
	var held tetris.Buttons
	for i, ba := range buttonActions {
		if in.Has(ba.action) {
			h.left[i] = h.holdTicks
		}
		if h.left[i] > 0 {
			held = held.With(ba.button)
			h.left[i]--
		}
	}
	return held
}

func (h *holdTracker) release() {
	h.left = [len(buttonActions)]int{}
}
