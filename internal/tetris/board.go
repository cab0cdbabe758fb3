package tetris

import "strings"

// Row is one bit-packed board row; bit c is column c.
type Row = uint16

// Board geometry around the visible well.
const (
	FloorRows   = 2  // permanently full rows below the well
	HiddenRows  = 2  // spawn rows above the well
	SideColumns = 2  // margin + wall on each side
	MaxRows     = 32 // row storage; also bounds the line mask to 32 bits

	MaxVisibleCols = 16 - 2*SideColumns
	MaxVisibleRows = MaxRows - FloorRows - HiddenRows
	MinVisibleCols = 4
	MinVisibleRows = 4
)

// Board is the playfield: a fixed array of row bitmasks with walls at
// columns 1 and numCols-2 and floor rows 0 and 1. Rows count upward.
type Board struct {
	rows     [MaxRows]Row
	numRows  int
	numCols  int
	emptyRow Row
	fullRow  Row
}

// NewBoard creates an empty board with the given visible well size.
// Sizes are clamped to the supported range.
func NewBoard(visibleRows, visibleCols int) *Board {
	visibleRows = clamp(visibleRows, MinVisibleRows, MaxVisibleRows)
	visibleCols = clamp(visibleCols, MinVisibleCols, MaxVisibleCols)

	b := &Board{
		numRows: visibleRows + FloorRows + HiddenRows,
		numCols: visibleCols + 2*SideColumns,
	}
	b.emptyRow = 1<<1 | 1<<(b.numCols-2)
	b.fullRow = ((1 << (b.numCols - 2)) - 1) << 1
	b.Reset()
	return b
}

// Reset clears the well, restoring walls and floor.
func (b *Board) Reset() {
	for r := range b.rows {
		b.rows[r] = 0
	}
	for r := 0; r < FloorRows; r++ {
		b.rows[r] = b.fullRow
	}
	for r := FloorRows; r < b.numRows; r++ {
		b.rows[r] = b.emptyRow
	}
}

// NumRows returns the total row count including floor and hidden rows.
func (b *Board) NumRows() int { return b.numRows }

// NumCols returns the total column count including walls and margins.
func (b *Board) NumCols() int { return b.numCols }

// VisibleRows returns the number of rows of the well proper.
func (b *Board) VisibleRows() int { return b.numRows - FloorRows - HiddenRows }

// VisibleCols returns the number of columns between the walls.
func (b *Board) VisibleCols() int { return b.numCols - 2*SideColumns }

// IsOccupied reports whether the raw cell (row, col) is set, boundaries
// included. Cells outside the array count as occupied.
func (b *Board) IsOccupied(row, col int) bool {
	if row < 0 || row >= b.numRows || col < 0 || col >= b.numCols {
		return true
	}
	return b.rows[row]&(1<<col) != 0
}

// Occupied addresses the visible well only: row 0 is the bottom row,
// column 0 the leftmost column inside the walls. Coordinates outside the
// well report false.
func (b *Board) Occupied(row, col int) bool {
	if row < 0 || row >= b.VisibleRows() || col < 0 || col >= b.VisibleCols() {
		return false
	}
	return b.IsOccupied(row+FloorRows, col+SideColumns)
}

// InBounds reports whether the piece's bounding box lies inside the row
// array and the column range a shifted 4-bit pattern can address.
func (b *Board) InBounds(p Piece) bool {
	return p.Row >= 0 && p.Row <= b.numRows-4 && p.Col >= 0 && p.Col <= b.numCols-4
}

// IsBlocked reports whether any cell of the piece overlaps a set board bit.
// Out-of-bounds positions are blocked.
func (b *Board) IsBlocked(p Piece) bool {
	if !b.InBounds(p) {
		return true
	}
	shape := p.Shape()
	for r := 0; r < 4; r++ {
		if b.rows[p.Row+r]&(shape.Row(r)<<p.Col) != 0 {
			return true
		}
	}
	return false
}

// Draw overlays the piece onto the board.
func (b *Board) Draw(p Piece) {
	if !b.InBounds(p) {
		return
	}
	shape := p.Shape()
	for r := 0; r < 4; r++ {
		b.rows[p.Row+r] |= shape.Row(r) << p.Col
	}
}

// Erase removes the piece's cells from the board.
func (b *Board) Erase(p Piece) {
	if !b.InBounds(p) {
		return
	}
	shape := p.Shape()
	for r := 0; r < 4; r++ {
		b.rows[p.Row+r] &^= shape.Row(r) << p.Col
	}
}

// IsLineFull reports whether every column between the walls of the raw
// row is set.
func (b *Board) IsLineFull(row int) bool {
	if row < FloorRows || row >= b.numRows {
		return false
	}
	return b.rows[row]&b.fullRow == b.fullRow
}

// FullLines returns a mask with bit r set for every full raw row r.
func (b *Board) FullLines() (mask uint32, count int) {
	for r := FloorRows; r < b.numRows; r++ {
		if b.IsLineFull(r) {
			mask |= 1 << r
			count++
		}
	}
	return mask, count
}

// Collapse removes the raw row by shifting every row above it down by one
// and resetting the top row to the empty pattern.
func (b *Board) Collapse(row int) {
	if row < FloorRows || row >= b.numRows {
		return
	}
	for ; row < b.numRows-1; row++ {
		b.rows[row] = b.rows[row+1]
	}
	b.rows[b.numRows-1] = b.emptyRow
}

// CollapseLines removes every row in mask. Rows are removed from the top
// down so that the indices of the remaining marked rows stay valid.
func (b *Board) CollapseLines(mask uint32) {
	for r := b.numRows - 1; r >= FloorRows; r-- {
		if mask&(1<<r) != 0 {
			b.Collapse(r)
		}
	}
}

// FillRow sets every cell between the walls of the raw row.
func (b *Board) FillRow(row int) {
	if row >= FloorRows && row < b.numRows {
		b.rows[row] = b.fullRow
	}
}

// ClearRow resets the raw row to walls only.
func (b *Board) ClearRow(row int) {
	if row >= FloorRows && row < b.numRows {
		b.rows[row] = b.emptyRow
	}
}

// RawRow returns the bit pattern of the raw row.
func (b *Board) RawRow(row int) Row {
	if row < 0 || row >= b.numRows {
		return 0
	}
	return b.rows[row]
}

// String renders the visible well top-down, '#' for set cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.VisibleRows() - 1; r >= 0; r-- {
		for c := 0; c < b.VisibleCols(); c++ {
			if b.Occupied(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
