package tetris

import "fmt"

// Mode selects how a game ends besides topping out.
type Mode uint8

const (
	// ModeMarathon ends in a win once the level passes MaxLevel.
	ModeMarathon Mode = iota
	// ModeEndless plays until the stack tops out.
	ModeEndless
)

// MaxLevel is the last level of a marathon game.
const MaxLevel = 10

func (m Mode) String() string {
	switch m {
	case ModeMarathon:
		return "marathon"
	case ModeEndless:
		return "endless"
	default:
		return "unknown"
	}
}

// Timing holds every tick-based interval of the engine.
// All values are counted in ticks (1/60 s at the standard cadence).
type Timing struct {
	MoveInterval     int
	RotateInterval   int
	SoftDropInterval int
	LockDelay        int

	// Fall interval at level L is max(FallBase - FallStep*L, FallMin).
	FallBase int
	FallStep int
	FallMin  int

	FlashFrames        int
	FlashTicksPerFrame int
	FillTicksPerRow    int
}

// DefaultTiming returns the standard intervals.
func DefaultTiming() Timing {
	return Timing{
		MoveInterval:       10,
		RotateInterval:     10,
		SoftDropInterval:   10,
		LockDelay:          30,
		FallBase:           50,
		FallStep:           4,
		FallMin:            2,
		FlashFrames:        5,
		FlashTicksPerFrame: 2,
		FillTicksPerRow:    6,
	}
}

// FallInterval returns the number of ticks between gravity steps at the
// given level. It never returns less than one.
func (t Timing) FallInterval(level int) int {
	return max(t.FallBase-t.FallStep*level, t.FallMin, 1)
}

// Validate checks that every interval is usable.
func (t Timing) Validate() error {
	nonNeg := []struct {
		name string
		v    int
	}{
		{"move interval", t.MoveInterval},
		{"rotate interval", t.RotateInterval},
		{"soft drop interval", t.SoftDropInterval},
		{"lock delay", t.LockDelay},
		{"flash frames", t.FlashFrames},
	}
	for _, f := range nonNeg {
		if f.v < 0 {
			return fmt.Errorf("tetris: %s must not be negative, got %d", f.name, f.v)
		}
	}
	if t.FallStep < 1 {
		return fmt.Errorf("tetris: fall step must be at least 1, got %d", t.FallStep)
	}
	if t.FallMin < 1 {
		return fmt.Errorf("tetris: fall min must be at least 1, got %d", t.FallMin)
	}
	if t.FallBase-t.FallStep*MaxLevel < t.FallMin {
		return fmt.Errorf("tetris: fall interval reaches its floor before level %d", MaxLevel)
	}
	if t.FlashTicksPerFrame < 1 {
		return fmt.Errorf("tetris: flash ticks per frame must be at least 1, got %d", t.FlashTicksPerFrame)
	}
	if t.FillTicksPerRow < 1 {
		return fmt.Errorf("tetris: fill ticks per row must be at least 1, got %d", t.FillTicksPerRow)
	}
	return nil
}

// Options configures a new Engine.
type Options struct {
	Rows   int // visible rows
	Cols   int // visible columns
	Mode   Mode
	Timing Timing
}

// DefaultOptions returns a standard 20x10 marathon game.
func DefaultOptions() Options {
	return Options{
		Rows:   20,
		Cols:   10,
		Mode:   ModeMarathon,
		Timing: DefaultTiming(),
	}
}

// Validate checks board dimensions and timing.
func (o Options) Validate() error {
	if o.Rows < MinVisibleRows || o.Rows > MaxVisibleRows {
		return fmt.Errorf("tetris: rows must be in [%d, %d], got %d", MinVisibleRows, MaxVisibleRows, o.Rows)
	}
	if o.Cols < MinVisibleCols || o.Cols > MaxVisibleCols {
		return fmt.Errorf("tetris: cols must be in [%d, %d], got %d", MinVisibleCols, MaxVisibleCols, o.Cols)
	}
	if o.Mode != ModeMarathon && o.Mode != ModeEndless {
		return fmt.Errorf("tetris: unknown mode %d", o.Mode)
	}
	return o.Timing.Validate()
}
