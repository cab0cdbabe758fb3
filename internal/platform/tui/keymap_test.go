package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	cases := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{runeKey("a"), core.ActionMoveLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{runeKey("d"), core.ActionMoveRight},
		{runeKey("z"), core.ActionRotateLeft},
		{runeKey("x"), core.ActionRotateRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateRight},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{runeKey("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runeKey("r"), core.ActionRestart},
		{runeKey("b"), core.ActionBack},
		{runeKey("h"), core.ActionMoveLeft},
		{runeKey("j"), core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey("?"), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}
	for _, tc := range cases {
		got, quit := km.MapKey(tc.msg)
		assert.False(t, quit, tc.msg.String())
		assert.Equal(t, tc.want, got, tc.msg.String())
	}

	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		_, quit := km.MapKey(msg)
		assert.True(t, quit, msg.String())
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeySpace}))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("x")))
}
