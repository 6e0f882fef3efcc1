package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Journal records finished runs. *storage.Store satisfies it.
type Journal interface {
	RecordRun(r storage.Run) (int64, error)
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Options configure a game model.
type Options struct {
	Config   core.RuntimeConfig
	Journal  Journal            // Optional
	Player   string             // Recorded with each run
	Logger   *log.Logger        // Optional
	Renderer *lipgloss.Renderer // Optional, nil uses the default renderer
}

// Rows reserved below the game for the help bar. The full view has one
// row per binding in its longest column.
const (
	shortHelpRows = 1
	fullHelpRows  = 4
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    *Palette
	journal    Journal
	player     string
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	helpStyle  lipgloss.Style
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) *Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	palette := NewPalette(opts.Renderer)

	h := help.New()
	h.Width = cfg.ScreenW

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(0, cfg.ScreenH-shortHelpRows)),
		palette:    palette,
		journal:    opts.Journal,
		player:     opts.Player,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		helpStyle:  palette.renderer.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (m *Model) gameHeight() int {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	return core.Max(0, m.config.ScreenH-rows)
}

func (m *Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init initializes the model and starts the game.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitGame()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse turns left-button presses into clicks.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitGame()
	return m, nil
}

// fitGame resizes the game area to what the help bar leaves free.
func (m *Model) fitGame() {
	w, h := m.config.ScreenW, m.gameHeight()
	m.screen.Resize(w, h)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.gameConfig())
	}
}

// handleTick runs one simulation step and journals finished runs.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, o := range result.Outcomes {
		m.record(o)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) record(o core.Outcome) {
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"player", m.player,
		"result", o.Result,
		"level", o.Level,
		"matched", o.Matched,
		"duration", o.Duration.Round(time.Second),
	)
	if m.journal == nil {
		return
	}
	_, err := m.journal.RecordRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Result:   string(o.Result),
		Level:    o.Level,
		Matched:  o.Matched,
		Duration: o.Duration,
	})
	if err != nil {
		// Best-effort: the game continues without its journal entry.
		m.logger.Warn("could not record run", "err", err)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m *Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
