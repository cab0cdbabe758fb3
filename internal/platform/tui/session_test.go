package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func init() {
	for _, id := range []string{"tetris", "tetris_endless"} {
		registry.Register(id, func() registry.Game { return &fakeGame{overAt: 1, score: 500} })
	}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func sendMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func seedScores(t *testing.T, store *storage.Store, gameID string, scores ...int) {
	t.Helper()
	for _, s := range scores {
		_, err := store.SaveScore(storage.ScoreRecord{GameID: gameID, Score: s, Lines: s / 100, Level: 1})
		require.NoError(t, err)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = sendMenu(t, m, keyUp)
	m = sendMenu(t, m, keyDown)
	m = sendMenu(t, m, keyDown)
	m = sendMenu(t, m, keyDown)
	m = sendMenu(t, m, keyEnter)

	require.NotNil(t, m.Selected())
	assert.Equal(t, "tetris_endless", m.Selected().GameID)
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	seedScores(t, store, "tetris", 300, 1200)

	m := NewMenuModel(store, core.RuntimeConfig{})
	assert.Contains(t, m.View(), "best 1200")
}

func TestMenuTabOpensScoreboard(t *testing.T) {
	m := sendMenu(t, NewMenuModel(nil, core.DefaultConfig()), keyTab)
	assert.True(t, m.WantsScoreboard())
	assert.Nil(t, m.Selected())
}

func TestScoreboardCyclesModes(t *testing.T) {
	store := openStore(t)
	seedScores(t, store, "tetris", 100, 200, 300)

	sb := NewScoreboardModel(store, 80, 24)
	assert.Equal(t, "tetris", sb.Mode())
	assert.Equal(t, 3, sb.Rows())
	assert.Contains(t, sb.View(), "3 games")

	next, _ := sb.Update(keyTab)
	sb = next.(ScoreboardModel)
	assert.Equal(t, "tetris_endless", sb.Mode())
	assert.Equal(t, 0, sb.Rows())
	assert.Contains(t, sb.View(), "No scores recorded yet")

	next, _ = sb.Update(keyTab)
	sb = next.(ScoreboardModel)
	assert.Equal(t, "tetris", sb.Mode())
}

func TestScoreboardBackAndQuit(t *testing.T) {
	next, cmd := NewScoreboardModel(nil, 80, 24).Update(keyEsc)
	sb := next.(ScoreboardModel)
	assert.True(t, sb.IsGoingBack())
	assert.False(t, sb.IsQuitting())
	assert.NotNil(t, cmd)

	next, _ = NewScoreboardModel(nil, 80, 24).Update(runeKey("q"))
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "alice")

	m, cmd := sendSession(t, m, keyTab)
	assert.Equal(t, viewScores, m.view)
	assert.Nil(t, cmd)

	m, _ = sendSession(t, m, keyEsc)
	assert.Equal(t, viewMenu, m.view)
	assert.Contains(t, m.View(), "T E T R I S")
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, core.DefaultConfig(), "bob")

	m, cmd := sendSession(t, m, keyEnter)
	require.Equal(t, viewGame, m.view)
	assert.NotNil(t, cmd)

	// Back is only honored while paused or after game over.
	m, _ = sendSession(t, m, runeKey("b"))
	assert.Equal(t, viewGame, m.view)

	m, _ = sendSession(t, m, TickMsg{})
	m, _ = sendSession(t, m, runeKey("b"))
	assert.Equal(t, viewMenu, m.view)

	// The finished run is saved and shows up in the rebuilt menu.
	assert.Contains(t, m.View(), "best 500")
}

func TestSessionQuit(t *testing.T) {
	m, cmd := sendSession(t, NewSessionModel(nil, core.DefaultConfig(), "carol"), runeKey("q"))
	assert.Empty(t, m.View())
	assert.NotNil(t, cmd)
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(nil, core.DefaultConfig(), "dave")
	b := NewSessionModel(nil, core.DefaultConfig(), "dave")
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
