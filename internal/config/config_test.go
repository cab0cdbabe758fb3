package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg TetrisConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("tetris"), &cfg))
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestDefaultsProduceDefaultOptions(t *testing.T) {
	opts, err := DefaultTetrisConfig().ToOptions()
	require.NoError(t, err)
	assert.Equal(t, tetris.DefaultOptions(), opts)
}

func TestLoadTetrisCustomPathPartial(t *testing.T) {
	path := writeConfig(t, "board:\n  cols: 8\nmode: endless\ntiming:\n  lock_delay: 12\n")

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Board.Rows, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Board.Cols)
	assert.Equal(t, 12, cfg.Timing.LockDelay)
	assert.Equal(t, 50, cfg.Timing.FallBase)

	opts, err := cfg.ToOptions()
	require.NoError(t, err)
	assert.Equal(t, tetris.ModeEndless, opts.Mode)
}

func TestLoadTetrisErrors(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadTetris(writeConfig(t, "board: [not, a, map"))
	assert.Error(t, err)
}

func TestToOptionsRejectsBadValues(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Board.Cols = 16
	_, err := cfg.ToOptions()
	assert.ErrorContains(t, err, "cols")

	cfg = DefaultTetrisConfig()
	cfg.Mode = "sprint"
	_, err = cfg.ToOptions()
	assert.ErrorContains(t, err, "unknown mode")
}

func TestPresetsStayValid(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		t.Run(string(p), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, p)
			_, err := cfg.ToOptions()
			assert.NoError(t, err)
		})
	}
}

func TestPresetEffects(t *testing.T) {
	base := DefaultTetrisConfig().Timing.ToTiming()

	easy := DefaultTetrisConfig()
	ApplyTetrisPreset(&easy, DifficultyEasy)
	assert.Greater(t, easy.Timing.ToTiming().FallInterval(1), base.FallInterval(1))
	assert.Greater(t, easy.Timing.LockDelay, base.LockDelay)

	hard := DefaultTetrisConfig()
	ApplyTetrisPreset(&hard, DifficultyHard)
	assert.Less(t, hard.Timing.ToTiming().FallInterval(1), base.FallInterval(1))

	for _, cfg := range []TetrisConfig{easy, hard} {
		tm := cfg.Timing.ToTiming()
		for level := 1; level < 10; level++ {
			assert.Less(t, tm.FallInterval(level+1), tm.FallInterval(level), "level %d", level)
		}
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyNormal, p)

	p, err = ParsePreset("HARD")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)

	_, err = ParsePreset("fixed")
	assert.Error(t, err, "gravity always speeds up with the level")
}

func TestColors(t *testing.T) {
	locked, flash, err := DefaultTetrisConfig().Colors()
	require.NoError(t, err)
	assert.Equal(t, core.ColorGray, locked)
	assert.Equal(t, core.ColorBrightWhite, flash)

	cfg := DefaultTetrisConfig()
	cfg.Render.LockedColor = "plaid"
	_, _, err = cfg.Colors()
	assert.Error(t, err)
}
