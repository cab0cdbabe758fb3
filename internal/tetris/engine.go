package tetris

// scoreMultipliers is indexed by the number of rows cleared by one lock.
var scoreMultipliers = [5]int{0, 1, 2, 7, 30}

// View is the read-only surface a renderer needs after each tick.
// Rows count bottom to top, columns left to right, boundaries excluded.
type View interface {
	Rows() int
	Cols() int
	Occupied(row, col int) bool
	Score() int
	Level() int
	GameOver() bool
}

// Engine is a single game. It is not safe for concurrent use; the caller
// drives it from one goroutine by calling SetButtons and Tick at a fixed
// cadence.
type Engine struct {
	opts  Options
	board *Board
	bag   *Bag

	piece    Piece
	hasPiece bool

	buttons     Buttons
	prevButtons Buttons

	lines int
	score int
	won   bool
	ticks uint64

	phase phase
}

var _ View = (*Engine)(nil)

// NewEngine creates a game and begins it. Out-of-range board sizes are
// clamped; timing is used as given, so callers should Validate options
// that come from user input.
func NewEngine(opts Options, rnd RandSource) *Engine {
	e := &Engine{
		opts:  opts,
		board: NewBoard(opts.Rows, opts.Cols),
		bag:   NewBag(rnd),
	}
	e.Begin()
	return e
}

// Begin resets the board, bag and counters and spawns the first piece.
func (e *Engine) Begin() {
	e.board.Reset()
	e.bag.Reset()
	e.hasPiece = false
	e.buttons = ButtonNone
	e.prevButtons = ButtonNone
	e.lines = 0
	e.score = 0
	e.won = false
	e.ticks = 0
	e.spawn()
}

// SetButtons records the buttons held for the next Tick.
func (e *Engine) SetButtons(b Buttons) {
	e.buttons = b
}

// Tick advances the game by one frame and reports whether anything a
// renderer would show has changed. After game over it is a no-op.
func (e *Engine) Tick() bool {
	if e.phase.kind() == StateGameOver {
		return false
	}
	e.ticks++
	changed := e.phase.tick(e)
	e.prevButtons = e.buttons
	return changed
}

// State returns the current state machine phase.
func (e *Engine) State() StateKind { return e.phase.kind() }

func (e *Engine) Rows() int { return e.board.VisibleRows() }
func (e *Engine) Cols() int { return e.board.VisibleCols() }

// Occupied reports whether a visible cell is set, the active piece included.
func (e *Engine) Occupied(row, col int) bool { return e.board.Occupied(row, col) }

func (e *Engine) Score() int     { return e.score }
func (e *Engine) Lines() int     { return e.lines }
func (e *Engine) Level() int     { return 1 + e.lines/10 }
func (e *Engine) Won() bool      { return e.won }
func (e *Engine) Ticks() uint64  { return e.ticks }
func (e *Engine) Mode() Mode     { return e.opts.Mode }
func (e *Engine) Timing() Timing { return e.opts.Timing }

// GameOver reports whether the game has ended, by topping out or winning.
func (e *Engine) GameOver() bool { return e.phase.kind() == StateGameOver }

// Active returns the falling piece, if there is one.
func (e *Engine) Active() (Piece, bool) { return e.piece, e.hasPiece }

// Board exposes the playfield for inspection.
func (e *Engine) Board() *Board { return e.board }

// FallInterval is the gravity interval at the current level.
func (e *Engine) FallInterval() int { return e.opts.Timing.FallInterval(e.Level()) }

// Move shifts the active piece horizontally, honoring the move cooldown.
// It reports whether the piece moved.
func (e *Engine) Move(dir int) bool {
	p, ok := e.phase.(*playing)
	if !ok {
		return false
	}
	return p.move(e, dir)
}

// Rotate turns the active piece with wall kicks, honoring the rotate
// cooldown. It reports whether the piece rotated.
func (e *Engine) Rotate(dir int) bool {
	p, ok := e.phase.(*playing)
	if !ok {
		return false
	}
	return p.rotate(e, dir)
}

// Fall drops the active piece one row. A false result means the piece is
// resting on something; the piece is left in place.
func (e *Engine) Fall() bool {
	if _, ok := e.phase.(*playing); !ok {
		return false
	}
	return e.fall()
}

// HardDrop drops the active piece as far as it goes and locks it.
func (e *Engine) HardDrop() {
	if _, ok := e.phase.(*playing); !ok {
		return
	}
	e.hardDrop()
	e.lock()
}

// spawn places the next piece at the top center in rotation 0. If that
// position is blocked the game tops out and the fill animation starts.
func (e *Engine) spawn() bool {
	e.piece = Piece{
		Kind: e.bag.Next(),
		Row:  e.board.NumRows() - 4,
		Col:  e.board.NumCols()/2 - 2,
	}
	if e.board.IsBlocked(e.piece) {
		e.hasPiece = false
		e.phase = newFilling(e)
		return false
	}
	e.hasPiece = true
	e.board.Draw(e.piece)
	e.phase = newPlaying(e)
	return true
}

// shift moves the piece dir columns if the target is free.
func (e *Engine) shift(dir int) bool {
	e.board.Erase(e.piece)
	trial := e.piece.Moved(dir, 0)
	ok := !e.board.IsBlocked(trial)
	if ok {
		e.piece = trial
	}
	e.board.Draw(e.piece)
	return ok
}

// turn rotates the piece, probing the kick candidates in order. The first
// in-bounds, unblocked candidate wins; otherwise nothing changes.
func (e *Engine) turn(dir int) bool {
	e.board.Erase(e.piece)
	defer func() { e.board.Draw(e.piece) }()

	rotated := e.piece.Rotated(dir)
	for _, k := range Kicks(e.piece.Kind, e.piece.Rotation, dir) {
		trial := rotated.Moved(k.DX, k.DY)
		if !e.board.InBounds(trial) {
			continue
		}
		if !e.board.IsBlocked(trial) {
			e.piece = trial
			return true
		}
	}
	return false
}

func (e *Engine) fall() bool {
	e.board.Erase(e.piece)
	trial := e.piece.Moved(0, -1)
	ok := !e.board.IsBlocked(trial)
	if ok {
		e.piece = trial
	}
	e.board.Draw(e.piece)
	return ok
}

func (e *Engine) hardDrop() {
	e.board.Erase(e.piece)
	for !e.board.IsBlocked(e.piece.Moved(0, -1)) {
		e.piece.Row--
	}
	e.board.Draw(e.piece)
}

// lock merges the active piece into the board and evaluates line clears.
// The piece is already drawn, so merging only means forgetting it.
func (e *Engine) lock() {
	e.hasPiece = false

	mask, count := e.board.FullLines()
	if count == 0 {
		e.spawn()
		return
	}

	// Score at the level in force before these lines count.
	e.score += scoreMultipliers[min(count, len(scoreMultipliers)-1)] * e.Level()
	e.lines += count

	if e.opts.Timing.FlashFrames > 0 {
		e.phase = newFlashing(e, mask)
		return
	}
	e.finishClear(mask)
}

// finishClear removes the cleared rows and moves on to the next piece,
// or ends a marathon that has passed its last level.
func (e *Engine) finishClear(mask uint32) {
	e.board.CollapseLines(mask)
	if e.opts.Mode == ModeMarathon && e.Level() > MaxLevel {
		e.won = true
		e.phase = gameOver{}
		return
	}
	e.spawn()
}
