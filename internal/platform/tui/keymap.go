package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type actionBinding struct {
	key.Binding
	action core.Action
}

// KeyMapper holds the key bindings of the game and the menu.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper returns the default bindings. Arrows, WASD and vi keys
// all move the piece.
func NewKeyMapper() *KeyMapper {
	bind := func(a core.Action, help string, keys ...string) actionBinding {
		return actionBinding{key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)), a}
	}
	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		game: []actionBinding{
			bind(core.ActionMoveLeft, "left", "left", "a", "h"),
			bind(core.ActionMoveRight, "right", "right", "d", "l"),
			bind(core.ActionRotateLeft, "rotate ccw", "z"),
			bind(core.ActionRotateRight, "rotate cw", "x", "up", "w", "k"),
			bind(core.ActionSoftDrop, "soft drop", "down", "s", "j"),
			bind(core.ActionHardDrop, "hard drop", " "),
			bind(core.ActionConfirm, "confirm", "enter"),
			bind(core.ActionBack, "menu", "b"),
			bind(core.ActionPause, "pause", "p", "esc"),
			bind(core.ActionRestart, "restart", "r"),
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("q", "ctrl+c")), MenuActionQuit},
			{key.NewBinding(key.WithKeys("up", "w", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("down", "s", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("esc", "b")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey returns the game action bound to msg, or ActionNone. isQuit
// reports the quit keys, which leave the program rather than the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.Binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MenuAction is what a key does in the menu.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

type menuBinding struct {
	key.Binding
	action MenuAction
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	for _, b := range km.menu {
		if key.Matches(msg, b.Binding) {
			return b.action
		}
	}
	return MenuActionNone
}
