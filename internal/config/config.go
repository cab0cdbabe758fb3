// Package config provides YAML configuration of the tetris engine and the
// difficulty presets offered by the CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TetrisConfig contains all configuration for a tetris game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Mode   string       `yaml:"mode"` // "marathon" or "endless"
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
}

// BoardConfig is the size of the visible well.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig mirrors tetris.Timing. All values are in ticks.
type TimingConfig struct {
	MoveInterval       int `yaml:"move_interval"`
	RotateInterval     int `yaml:"rotate_interval"`
	SoftDropInterval   int `yaml:"soft_drop_interval"`
	LockDelay          int `yaml:"lock_delay"`
	FallBase           int `yaml:"fall_base"`
	FallStep           int `yaml:"fall_step"`
	FallMin            int `yaml:"fall_min"`
	FlashFrames        int `yaml:"flash_frames"`
	FlashTicksPerFrame int `yaml:"flash_ticks_per_frame"`
	FillTicksPerRow    int `yaml:"fill_ticks_per_row"`
}

// InputConfig tunes how key presses become held buttons.
type InputConfig struct {
	// HoldTicks is how long a single key press counts as held. Terminal
	// autorepeat refreshes it while the key stays down.
	HoldTicks int `yaml:"hold_ticks"`
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	LockedColor string `yaml:"locked_color"`
	FlashColor  string `yaml:"flash_color"`
}

// ParseMode converts a mode name to tetris.Mode. Empty means marathon.
func ParseMode(s string) (tetris.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "marathon":
		return tetris.ModeMarathon, nil
	case "endless":
		return tetris.ModeEndless, nil
	default:
		return tetris.ModeMarathon, fmt.Errorf("config: unknown mode %q", s)
	}
}

// ToTiming converts the timing section.
func (t TimingConfig) ToTiming() tetris.Timing {
	return tetris.Timing{
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
	}
}

// ToOptions builds validated engine options.
func (c TetrisConfig) ToOptions() (tetris.Options, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return tetris.Options{}, err
	}
	opts := tetris.Options{
		Rows:   c.Board.Rows,
		Cols:   c.Board.Cols,
		Mode:   mode,
		Timing: c.Timing.ToTiming(),
	}
	if err := opts.Validate(); err != nil {
		return tetris.Options{}, fmt.Errorf("config: %w", err)
	}
	return opts, nil
}

// Colors resolves the render section. Empty names fall back to gray
// locked cells and white flashing rows.
func (c TetrisConfig) Colors() (locked, flash core.Color, err error) {
	locked, flash = core.ColorGray, core.ColorBrightWhite
	if c.Render.LockedColor != "" {
		if locked, err = core.ParseColor(c.Render.LockedColor); err != nil {
			return locked, flash, fmt.Errorf("config: locked_color: %w", err)
		}
	}
	if c.Render.FlashColor != "" {
		if flash, err = core.ParseColor(c.Render.FlashColor); err != nil {
			return locked, flash, fmt.Errorf("config: flash_color: %w", err)
		}
	}
	return locked, flash, nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(s)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
