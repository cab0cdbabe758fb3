package tetris

// Piece is the falling tetromino: its kind, rotation state and the raw
// board position of the bottom-left corner of its 4x4 bounding box.
type Piece struct {
	Kind     Kind
	Rotation uint8
	Row      int
	Col      int
}

// Shape returns the piece's pattern in its current rotation.
func (p Piece) Shape() Shape {
	return ShapeOf(p.Kind, p.Rotation)
}

// Moved returns a copy shifted by (dcol, drow).
func (p Piece) Moved(dcol, drow int) Piece {
	p.Col += dcol
	p.Row += drow
	return p
}

// Rotated returns a copy turned by dir quarter turns (+1 clockwise).
func (p Piece) Rotated(dir int) Piece {
	p.Rotation = uint8((int(p.Rotation) + NumRotations + dir) % NumRotations)
	return p
}

// Occupies reports whether the piece covers the visible cell (row, col).
func (p Piece) Occupies(row, col int) bool {
	r := row + FloorRows - p.Row
	c := col + SideColumns - p.Col
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return false
	}
	return p.Shape().Cell(r, c)
}
