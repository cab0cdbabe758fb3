package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration. It matches
// defaults/tetris.yaml and is used when that file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	t := tetris.DefaultTiming()
	return TetrisConfig{
		Board: BoardConfig{Rows: 20, Cols: 10},
		Timing: TimingConfig{
			MoveInterval:       t.MoveInterval,
			RotateInterval:     t.RotateInterval,
			SoftDropInterval:   t.SoftDropInterval,
			LockDelay:          t.LockDelay,
			FallBase:           t.FallBase,
			FallStep:           t.FallStep,
			FallMin:            t.FallMin,
			FlashFrames:        t.FlashFrames,
			FlashTicksPerFrame: t.FlashTicksPerFrame,
			FillTicksPerRow:    t.FillTicksPerRow,
		},
		Mode:   "marathon",
		Input:  InputConfig{HoldTicks: 6},
		Render: RenderConfig{LockedColor: "gray", FlashColor: "bright_white"},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_endless":
		return defaultTetrisYAML
	default:
		return nil
	}
}
