package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string    { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.Equal(t, "Stub zz_stub", Title("zz_stub"))
	assert.Equal(t, "nope", Title("nope"))

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	_, err = Create("nope")
	assert.Error(t, err)

	list := List()
	require.NotEmpty(t, list)
	assert.Equal(t, "zz_stub", list[len(list)-1].ID)

	assert.Panics(t, func() {
		Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	})
}
