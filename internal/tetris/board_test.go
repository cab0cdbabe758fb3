package tetris

import (
	"math/rand"
	"testing"
)

func TestNewBoardGeometry(t *testing.T) {
	b := NewBoard(20, 10)
	if b.NumRows() != 24 || b.NumCols() != 14 {
		t.Fatalf("raw size = %dx%d, want 24x14", b.NumRows(), b.NumCols())
	}
	if b.VisibleRows() != 20 || b.VisibleCols() != 10 {
		t.Fatalf("visible size = %dx%d, want 20x10", b.VisibleRows(), b.VisibleCols())
	}
	for r := 0; r < FloorRows; r++ {
		if b.RawRow(r) != b.fullRow {
			t.Errorf("floor row %d not full: %016b", r, b.RawRow(r))
		}
	}
	for r := 0; r < b.VisibleRows(); r++ {
		for c := 0; c < b.VisibleCols(); c++ {
			if b.Occupied(r, c) {
				t.Fatalf("fresh board has (%d, %d) set", r, c)
			}
		}
	}
	if !b.IsOccupied(5, 1) || !b.IsOccupied(5, 12) {
		t.Error("walls missing")
	}
}

func TestNewBoardClamps(t *testing.T) {
	b := NewBoard(100, 100)
	if b.VisibleRows() != MaxVisibleRows || b.VisibleCols() != MaxVisibleCols {
		t.Errorf("clamped to %dx%d", b.VisibleRows(), b.VisibleCols())
	}
	b = NewBoard(0, 0)
	if b.VisibleRows() != MinVisibleRows || b.VisibleCols() != MinVisibleCols {
		t.Errorf("clamped to %dx%d", b.VisibleRows(), b.VisibleCols())
	}
}

func TestOccupiedOutsideWellIsFalse(t *testing.T) {
	b := NewBoard(20, 10)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {20, 0}, {0, 10}} {
		if b.Occupied(rc[0], rc[1]) {
			t.Errorf("Occupied(%d, %d) = true", rc[0], rc[1])
		}
	}
	if !b.IsOccupied(-1, 0) || !b.IsOccupied(0, 14) {
		t.Error("raw cells outside the array must count as occupied")
	}
}

func TestIsLineFullMatchesCells(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	b := NewBoard(20, 10)
	for trial := 0; trial < 200; trial++ {
		b.Reset()
		for r := FloorRows; r < b.NumRows(); r++ {
			for c := SideColumns; c < b.NumCols()-SideColumns; c++ {
				// Bias toward set cells so full rows actually occur.
				if rnd.Intn(10) < 9 {
					b.rows[r] |= 1 << c
				}
			}
		}
		for r := 0; r < b.VisibleRows(); r++ {
			want := true
			for c := 0; c < b.VisibleCols(); c++ {
				if !b.Occupied(r, c) {
					want = false
					break
				}
			}
			if got := b.IsLineFull(r + FloorRows); got != want {
				t.Fatalf("trial %d row %d: IsLineFull = %v, want %v\n%s", trial, r, got, want, b)
			}
		}
	}
}

func TestCollapseLines(t *testing.T) {
	b := NewBoard(8, 6)
	// Tag every visible row with a distinct pattern in its first cells.
	for r := 0; r < b.VisibleRows(); r++ {
		b.rows[r+FloorRows] = b.emptyRow | Row(r+1)<<SideColumns
	}
	b.FillRow(FloorRows + 1)
	b.FillRow(FloorRows + 3)
	mask, count := b.FullLines()
	if count != 2 {
		t.Fatalf("FullLines count = %d, want 2", count)
	}

	b.CollapseLines(mask)

	want := []Row{1, 3, 5, 6, 7, 8}
	for i, tag := range want {
		got := b.RawRow(i + FloorRows)
		if exp := b.emptyRow | tag<<SideColumns; got != exp {
			t.Errorf("row %d = %016b, want %016b", i, got, exp)
		}
	}
	for r := len(want); r < b.VisibleRows()+HiddenRows; r++ {
		if got := b.RawRow(r + FloorRows); got != b.emptyRow {
			t.Errorf("row %d not empty after collapse: %016b", r, got)
		}
	}
}

func TestDrawErase(t *testing.T) {
	b := NewBoard(20, 10)
	p := Piece{Kind: KindO, Row: 1, Col: 5}
	if b.IsBlocked(p) {
		t.Fatal("O on the floor is blocked")
	}
	b.Draw(p)
	for _, rc := range [][2]int{{0, 4}, {0, 5}, {1, 4}, {1, 5}} {
		if !b.Occupied(rc[0], rc[1]) {
			t.Errorf("cell %v not drawn", rc)
		}
		if !p.Occupies(rc[0], rc[1]) {
			t.Errorf("piece does not report %v", rc)
		}
	}
	if !b.IsBlocked(p.Moved(0, -1)) {
		t.Error("O below the floor not blocked")
	}
	b.Erase(p)
	if b.String() != NewBoard(20, 10).String() {
		t.Errorf("erase left cells behind:\n%s", b)
	}
}

func TestIsBlockedOutOfBounds(t *testing.T) {
	b := NewBoard(20, 10)
	for _, p := range []Piece{
		{Kind: KindT, Row: -1, Col: 5},
		{Kind: KindT, Row: 5, Col: -1},
		{Kind: KindT, Row: b.NumRows() - 3, Col: 5},
		{Kind: KindT, Row: 5, Col: b.NumCols() - 3},
	} {
		if !b.IsBlocked(p) {
			t.Errorf("%+v not blocked", p)
		}
	}
}
