package tetris

// Snapshot captures the game state for determinism tests and debugging.
type Snapshot struct {
	Tick     uint64
	Mode     string
	State    string
	Score    int
	Lines    int
	Level    int
	Piece    string // kind letter, empty when no piece is falling
	Rotation uint8
	Row      int
	Col      int
	Paused   bool
	Board    string // visible well, '#' for set cells, top row first
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	s := Snapshot{
		Tick:   g.tick,
		Mode:   e.Mode().String(),
		State:  e.State().String(),
		Score:  e.Score(),
		Lines:  e.Lines(),
		Level:  e.Level(),
		Paused: g.paused,
		Board:  e.Board().String(),
	}
	if p, ok := e.Active(); ok {
		s.Piece = p.Kind.String()
		s.Rotation = p.Rotation
		s.Row = p.Row
		s.Col = p.Col
	}
	return s
}
