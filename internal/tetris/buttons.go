package tetris

import "strings"

// Buttons is the set of logical buttons held during one tick.
type Buttons uint8

const (
	ButtonMoveLeft Buttons = 1 << iota
	ButtonMoveRight
	ButtonRotateLeft
	ButtonRotateRight
	ButtonSoftDrop
	ButtonHardDrop

	ButtonNone Buttons = 0
)

var buttonNames = []struct {
	b    Buttons
	name string
}{
	{ButtonMoveLeft, "MoveLeft"},
	{ButtonMoveRight, "MoveRight"},
	{ButtonRotateLeft, "RotateLeft"},
	{ButtonRotateRight, "RotateRight"},
	{ButtonSoftDrop, "SoftDrop"},
	{ButtonHardDrop, "HardDrop"},
}

// Has reports whether every button in o is held.
func (b Buttons) Has(o Buttons) bool {
	return o != 0 && b&o == o
}

// With returns the set with o added.
func (b Buttons) With(o Buttons) Buttons {
	return b | o
}

// MoveDirection is -1, 0 or +1. Holding both directions cancels out.
func (b Buttons) MoveDirection() int {
	return axis(b.Has(ButtonMoveLeft), b.Has(ButtonMoveRight))
}

// RotateDirection is -1 (counterclockwise), 0 or +1 (clockwise).
func (b Buttons) RotateDirection() int {
	return axis(b.Has(ButtonRotateLeft), b.Has(ButtonRotateRight))
}

func (b Buttons) String() string {
	if b == ButtonNone {
		return "None"
	}
	var parts []string
	for _, n := range buttonNames {
		if b.Has(n.b) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

func axis(neg, pos bool) int {
	d := 0
	if neg {
		d--
	}
	if pos {
		d++
	}
	return d
}
