package tetris

// StateKind names the engine's current phase.
type StateKind uint8

const (
	StatePlaying StateKind = iota
	StateFlashing
	StateFilling
	StateGameOver
)

func (s StateKind) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateFlashing:
		return "flashing"
	case StateFilling:
		return "filling"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// phase is one state of the engine together with the counters only that
// state needs.
type phase interface {
	kind() StateKind
	tick(e *Engine) bool
}

// playing maneuvers the active piece.
type playing struct {
	framesUntilFall  int
	moveCooldown     int
	rotateCooldown   int
	softDropCooldown int

	locking   bool
	lockDelay int
}

func newPlaying(e *Engine) *playing {
	return &playing{framesUntilFall: e.FallInterval()}
}

func (p *playing) kind() StateKind { return StatePlaying }

func (p *playing) tick(e *Engine) bool {
	t := e.opts.Timing
	b := e.buttons

	if p.locking {
		if p.lockDelay > 0 {
			p.lockDelay--
		} else {
			return p.settle(e)
		}
	}

	changed := p.rotate(e, b.RotateDirection())
	if p.move(e, b.MoveDirection()) {
		changed = true
	}

	if b.Has(ButtonHardDrop) && !e.prevButtons.Has(ButtonHardDrop) {
		e.hardDrop()
		e.lock()
		return true
	}

	if b.Has(ButtonSoftDrop) {
		if p.softDropCooldown > 0 {
			p.softDropCooldown--
		} else {
			p.framesUntilFall = 0
			p.softDropCooldown = t.SoftDropInterval
		}
	} else {
		p.softDropCooldown = 0
	}

	if p.framesUntilFall > 0 {
		p.framesUntilFall--
	}
	if p.framesUntilFall == 0 {
		p.framesUntilFall = e.FallInterval()
		if e.fall() {
			p.locking = false
			changed = true
		} else if !p.locking {
			p.locking = true
			p.lockDelay = t.LockDelay
		}
	}
	return changed
}

// settle runs when the lock delay expires. A piece slid off its ledge
// during the delay keeps falling instead of locking in mid-air.
func (p *playing) settle(e *Engine) bool {
	if e.fall() {
		p.locking = false
		p.framesUntilFall = e.FallInterval()
		return true
	}
	e.lock()
	return true
}

func (p *playing) move(e *Engine, dir int) bool {
	if dir == 0 {
		p.moveCooldown = 0
		return false
	}
	if p.moveCooldown > 0 {
		p.moveCooldown--
		return false
	}
	if !e.shift(dir) {
		return false
	}
	p.moveCooldown = e.opts.Timing.MoveInterval
	p.touched(e)
	return true
}

func (p *playing) rotate(e *Engine, dir int) bool {
	if dir == 0 {
		p.rotateCooldown = 0
		return false
	}
	if p.rotateCooldown > 0 {
		p.rotateCooldown--
		return false
	}
	if !e.turn(dir) {
		return false
	}
	p.rotateCooldown = e.opts.Timing.RotateInterval
	p.touched(e)
	return true
}

// touched restarts the lock delay after a successful move or rotation.
func (p *playing) touched(e *Engine) {
	if p.locking {
		p.lockDelay = e.opts.Timing.LockDelay
	}
}

// flashing blinks the completed rows before they collapse.
type flashing struct {
	mask      uint32
	frame     int
	ticksLeft int
}

func newFlashing(e *Engine, mask uint32) *flashing {
	f := &flashing{mask: mask, ticksLeft: e.opts.Timing.FlashTicksPerFrame}
	f.paint(e)
	return f
}

func (f *flashing) kind() StateKind { return StateFlashing }

func (f *flashing) tick(e *Engine) bool {
	f.ticksLeft--
	if f.ticksLeft > 0 {
		return false
	}
	f.frame++
	if f.frame >= e.opts.Timing.FlashFrames {
		e.finishClear(f.mask)
		return true
	}
	f.paint(e)
	f.ticksLeft = e.opts.Timing.FlashTicksPerFrame
	return true
}

// paint shows the marked rows empty on even frames and full on odd ones.
func (f *flashing) paint(e *Engine) {
	for r := FloorRows; r < e.board.NumRows(); r++ {
		if f.mask&(1<<r) == 0 {
			continue
		}
		if f.frame%2 == 0 {
			e.board.ClearRow(r)
		} else {
			e.board.FillRow(r)
		}
	}
}

// filling is the topping-out animation: visible rows fill bottom-up, one
// every FillTicksPerRow ticks, then the game is over.
type filling struct {
	row       int
	rowsLeft  int
	ticksLeft int
}

func newFilling(e *Engine) *filling {
	return &filling{
		row:       FloorRows,
		rowsLeft:  e.board.VisibleRows(),
		ticksLeft: e.opts.Timing.FillTicksPerRow,
	}
}

func (f *filling) kind() StateKind { return StateFilling }

func (f *filling) tick(e *Engine) bool {
	f.ticksLeft--
	if f.ticksLeft > 0 {
		return false
	}
	if f.rowsLeft == 0 {
		e.phase = gameOver{}
		return true
	}
	e.board.FillRow(f.row)
	f.row++
	f.rowsLeft--
	f.ticksLeft = e.opts.Timing.FillTicksPerRow
	return true
}

// gameOver is terminal.
type gameOver struct{}

func (gameOver) kind() StateKind   { return StateGameOver }
func (gameOver) tick(*Engine) bool { return false }
