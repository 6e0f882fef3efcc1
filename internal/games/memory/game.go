// Package memory adapts the memory-match engine to the platform: it turns
// cursor keys and mouse clicks into card selections, advances engine time
// by one frame per step, shows the time-up and victory dialogs and draws
// the board into a core.Screen.
package memory

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/games/memory/engine"
	"github.com/vovakirdan/tui-memory/internal/registry"
)

// ID is the registry and journal identifier of the game.
const ID = "memory"

// Settings configure games created by the registry factory.
type Settings struct {
	Config config.MemoryConfig
	Logger *log.Logger
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{Config: config.DefaultMemoryConfig()}
)

// Configure sets the settings used by games the registry creates from now on.
func Configure(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

func currentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(currentSettings())
	})
}

// Dialog is the modal overlay currently shown, if any.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogTimeUp
	DialogVictory
)

// Game implements registry.Game on top of engine.Controller.
type Game struct {
	settings Settings
	logger   *log.Logger

	ctrl   *engine.Controller
	tick   uint64
	frame  time.Duration
	cursor int
	dialog Dialog
	status string

	screenW int
	screenH int
	layout  layout

	// outcomes collects finished runs during one Step.
	outcomes []core.Outcome
}

// New creates a game with the given settings. Reset must be called before use.
func New(s Settings) *Game {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{settings: s, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Match" }

// Reset deals a new run from level 1.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.frame = cfg.FrameDuration()
	g.cursor = 0
	g.dialog = DialogNone
	g.status = "Flip a card to start the clock"
	g.outcomes = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	mc := g.settings.Config
	opts := engine.Options{
		Tiers:         mc.Tiers(),
		FinalLevel:    mc.FinalLevel,
		TickInterval:  mc.TickInterval(),
		MismatchDelay: mc.MismatchDelay(),
		Rand:          rand.New(rand.NewSource(cfg.Seed)),
		Logger:        g.logger,
	}
	ctrl, err := engine.New(opts)
	if err != nil {
		g.logger.Warn("invalid level table, using defaults", "err", err)
		opts.Tiers, opts.FinalLevel = nil, 0
		ctrl, err = engine.New(opts)
		if err != nil {
			panic(err)
		}
	}
	g.ctrl = ctrl
	g.ctrl.Subscribe(g.onEvent)
	g.relayout()
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.relayout()
}

// Step handles one frame of input, then advances engine time by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.outcomes = nil

	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case g.dialog != DialogNone:
		if in.Has(core.ActionConfirm) || len(in.Clicks) > 0 {
			g.dismiss()
		}
	case !g.layout.tooSmall:
		g.handleInput(in)
	}

	g.ctrl.Advance(g.frame)

	return core.StepResult{State: g.State(), Outcomes: g.outcomes}
}

func (g *Game) handleInput(in core.InputFrame) {
	rows, cols := g.ctrl.Board().Rows(), g.ctrl.Board().Cols()
	row, col := g.cursor/cols, g.cursor%cols

	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	g.cursor = core.Clamp(row, 0, rows-1)*cols + core.Clamp(col, 0, cols-1)

	if in.Has(core.ActionConfirm) {
		g.selectCard(g.cursor)
	}
	for _, p := range in.Clicks {
		if g.dialog != DialogNone {
			break
		}
		if i, ok := g.layout.cardAt(p.X, p.Y); ok {
			g.cursor = i
			g.selectCard(i)
		}
	}
}

// selectCard forwards a tap, guarding against a board that changed size
// earlier in the same frame.
func (g *Game) selectCard(i int) {
	if !g.ctrl.Board().InBounds(i) {
		return
	}
	g.ctrl.SelectCard(i)
}

// dismiss closes the current dialog. After a victory the run starts over.
func (g *Game) dismiss() {
	switch g.dialog {
	case DialogTimeUp:
		g.ctrl.Acknowledge()
		g.status = "Try again from level 1"
	case DialogVictory:
		g.ctrl.Reset()
		g.status = "New game"
	}
	g.dialog = DialogNone
}

func (g *Game) restart() {
	g.ctrl.Reset()
	g.dialog = DialogNone
	g.status = "Game reset"
}

func (g *Game) onEvent(e engine.Event) {
	switch ev := e.(type) {
	case engine.LevelStarted:
		g.cursor = 0
		g.relayout()
		if ev.Level > 1 {
			g.status = fmt.Sprintf("Level %d", ev.Level)
		}
	case engine.PairMatched:
		g.status = "Match!"
	case engine.PairMismatched:
		g.status = "No match"
	case engine.LevelCleared:
		g.status = fmt.Sprintf("Level %d cleared", ev.Level)
	case engine.GameWon:
		g.outcomes = append(g.outcomes, core.Outcome{
			Result:   core.ResultWon,
			Level:    ev.Level,
			Matched:  g.ctrl.Board().MatchedPairs(),
			Duration: g.ctrl.Elapsed(),
		})
		g.dialog = DialogVictory
	case engine.TimedOut:
		// The controller restarts level 1 right after this event, so the
		// run length must be read now.
		g.outcomes = append(g.outcomes, core.Outcome{
			Result:   core.ResultTimedOut,
			Level:    ev.Level,
			Matched:  ev.Matched,
			Duration: g.ctrl.Elapsed(),
		})
		if g.dialog == DialogNone {
			g.dialog = DialogTimeUp
		}
	}
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Level:     g.ctrl.Level(),
		TimeLeft:  g.ctrl.TimeLeft(),
		Running:   g.ctrl.TimerRunning(),
		Suspended: g.dialog != DialogNone,
		Finished:  g.ctrl.Phase() == engine.PhaseWon,
	}
}

// Controller exposes the engine for tests and tooling.
func (g *Game) Controller() *engine.Controller { return g.ctrl }

// Cursor returns the index of the card under the cursor.
func (g *Game) Cursor() int { return g.cursor }

// Dialog returns the overlay currently shown.
func (g *Game) Dialog() Dialog { return g.dialog }
