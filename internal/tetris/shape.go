// Package tetris implements the rules engine of a falling-block puzzle game.
// It owns the bit-packed playfield, the active piece, the 7-bag randomizer,
// SRS rotation with wall kicks, line clearing, scoring and the tick-driven
// state machine. It has no dependencies on input or display technology:
// callers feed a Buttons snapshot per tick and read the View afterwards.
package tetris

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	NumKinds = 7
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) < NumKinds {
		return "IJLOSTZ"[k : k+1]
	}
	return "?"
}

// Shape is a 4x4 cell pattern packed into 16 bits.
// Bit 4*r+c set means row r (counted upward) and column c of the piece's
// bounding box is occupied.
type Shape uint16

// NumRotations is the number of rotation states of every kind.
const NumRotations = 4

// Columns appear mirrored in the literals below because bits are written
// high to low while columns count left to right. Where a piece needs
// padding it is added in the top row.
var shapes = [NumKinds][NumRotations]Shape{
	KindI: {
		0b0000111100000000,
		0b0100010001000100,
		0b0000000011110000,
		0b0010001000100010,
	},
	KindJ: {
		0b0000000101110000,
		0b0000011000100010,
		0b0000000001110100,
		0b0000001000100011,
	},
	KindL: {
		0b0000010001110000,
		0b0000001000100110,
		0b0000000001110001,
		0b0000001100100010,
	},
	KindO: {
		0b0000011001100000,
		0b0000011001100000,
		0b0000011001100000,
		0b0000011001100000,
	},
	KindS: {
		0b0000011000110000,
		0b0000001001100100,
		0b0000000001100011,
		0b0000000100110010,
	},
	KindT: {
		0b0000001001110000,
		0b0000001001100010,
		0b0000000001110010,
		0b0000001000110010,
	},
	KindZ: {
		0b0000001101100000,
		0b0000010001100010,
		0b0000000000110110,
		0b0000001000110001,
	},
}

// ShapeOf returns the pattern of kind k in rotation state rot (0-3).
func ShapeOf(k Kind, rot uint8) Shape {
	return shapes[k][rot&(NumRotations-1)]
}

// Row returns the 4-bit pattern of row r of the shape.
func (s Shape) Row(r int) uint16 {
	return uint16(s>>(4*r)) & 0b1111
}

// Cell reports whether row r, column c of the bounding box is occupied.
func (s Shape) Cell(r, c int) bool {
	return s&(1<<(4*r+c)) != 0
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Kick is a positional offset tried during rotation. Y grows upward.
type Kick struct {
	DX, DY int
}

// NumKicks is the number of candidates tried for every rotation,
// including the implicit zero offset.
const NumKicks = 5

// SRS kick data, https://tetris.wiki/Super_Rotation_System#Wall_Kicks.
// Indexed by the rotation state the piece rotates from. The zero offset is
// implicit and left out.
var (
	jlstzKicksCW = [NumRotations][NumKicks - 1]Kick{
		{{-1, 0}, {-1, +1}, {0, -2}, {-1, -2}}, // 0->R
		{{+1, 0}, {+1, -1}, {0, +2}, {+1, +2}}, // R->2
		{{+1, 0}, {+1, +1}, {0, -2}, {+1, -2}}, // 2->L
		{{-1, 0}, {-1, -1}, {0, +2}, {-1, +2}}, // L->0
	}
	jlstzKicksCCW = [NumRotations][NumKicks - 1]Kick{
		{{+1, 0}, {+1, +1}, {0, -2}, {+1, -2}}, // 0->L
		{{+1, 0}, {+1, -1}, {0, +2}, {+1, +2}}, // R->0
		{{-1, 0}, {-1, +1}, {0, -2}, {-1, -2}}, // 2->R
		{{-1, 0}, {-1, -1}, {0, +2}, {-1, +2}}, // L->2
	}
	iKicksCW = [NumRotations][NumKicks - 1]Kick{
		{{-2, 0}, {+1, 0}, {-2, -1}, {+1, +2}}, // 0->R
		{{-1, 0}, {+2, 0}, {-1, +2}, {+2, -1}}, // R->2
		{{+2, 0}, {-1, 0}, {+2, +1}, {-1, -2}}, // 2->L
		{{+1, 0}, {-2, 0}, {+1, -2}, {-2, +1}}, // L->0
	}
	iKicksCCW = [NumRotations][NumKicks - 1]Kick{
		{{-1, 0}, {+2, 0}, {-1, +2}, {+2, -1}}, // 0->L
		{{+2, 0}, {-1, 0}, {+2, +1}, {-1, -2}}, // R->0
		{{+1, 0}, {-2, 0}, {+1, -2}, {-2, +1}}, // 2->R
		{{-2, 0}, {+1, 0}, {-2, -1}, {+1, +2}}, // L->2
	}
)

// Kicks returns the ordered candidate offsets for rotating kind k out of
// rotation state from in direction dir (+1 clockwise, -1 counterclockwise).
// The first candidate is always the zero offset. O never kicks.
func Kicks(k Kind, from uint8, dir int) []Kick {
	out := make([]Kick, 1, NumKicks)
	if k == KindO || dir == 0 {
		return out
	}

	from &= NumRotations - 1
	var table *[NumRotations][NumKicks - 1]Kick
	switch {
	case k == KindI && dir > 0:
		table = &iKicksCW
	case k == KindI:
		table = &iKicksCCW
	case dir > 0:
		table = &jlstzKicksCW
	default:
		table = &jlstzKicksCCW
	}
	return append(out, table[from][:]...)
}
