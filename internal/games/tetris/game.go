// Package tetris adapts the rules engine to the arcade platform: it maps
// input frames to held buttons, handles pause and restart, and renders the
// well and HUD into a core.Screen.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	IDMarathon = "tetris"
	IDEndless  = "tetris_endless"
)

// IDForMode maps a config mode name to its game ID. Unknown names map to
// marathon.
func IDForMode(name string) string {
	if mode, err := config.ParseMode(name); err == nil && mode == tetris.ModeEndless {
		return IDEndless
	}
	return IDMarathon
}

// Package-level settings applied on the next Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file consulted on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Game is one tetris session as seen by the platform.
type Game struct {
	mode   tetris.Mode
	cfg    config.TetrisConfig
	engine *tetris.Engine
	rng    *rand.Rand
	hold   holdTracker

	tick    uint64
	paused  bool
	screenW int
	screenH int

	lockedColor core.Color
	flashColor  core.Color
}

// New creates a marathon game.
func New() *Game {
	return &Game{mode: tetris.ModeMarathon}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: tetris.ModeEndless}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == tetris.ModeEndless {
		return IDEndless
	}
	return IDMarathon
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == tetris.ModeEndless {
		return "Tetris (Endless)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a new game. A config that
// fails to load or validate is replaced by the defaults; the CLI checks
// it up front so the user sees the error.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	opts, err := cfg.ToOptions()
	if err != nil {
		cfg = config.DefaultTetrisConfig()
		opts = tetris.DefaultOptions()
	}
	opts.Mode = g.mode
	g.ResetWith(rc, cfg, opts)
}

// ResetWith starts a new game from explicit settings, bypassing the
// config search path.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.TetrisConfig, opts tetris.Options) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.engine = tetris.NewEngine(opts, g.rng)
	g.hold = newHoldTracker(cfg.Input.HoldTicks)
	g.tick = 0
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	locked, flash, err := cfg.Colors()
	if err != nil {
		locked, flash = core.ColorGray, core.ColorBrightWhite
	}
	g.lockedColor, g.flashColor = locked, flash
}

// Resize records a new terminal size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.engine.GameOver() {
		g.ResetWith(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		}, g.cfg, g.options())
		return core.StepResult{State: g.State(), Changed: true}
	}

	changed := false
	if in.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
		g.hold.release()
		changed = true
	}

	if g.paused || g.engine.GameOver() || g.tooSmall() {
		return core.StepResult{State: g.State(), Changed: changed}
	}

	g.engine.SetButtons(g.hold.update(in))
	if g.engine.Tick() {
		changed = true
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

func (g *Game) options() tetris.Options {
	opts, err := g.cfg.ToOptions()
	if err != nil {
		opts = tetris.DefaultOptions()
	}
	opts.Mode = g.mode
	return opts
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Lines:    g.engine.Lines(),
		Level:    g.engine.Level(),
		GameOver: g.engine.GameOver(),
		Won:      g.engine.Won(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying rules engine.
func (g *Game) Engine() *tetris.Engine {
	return g.engine
}
