package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

// HistorySource is the read side of the run journal. *storage.Store satisfies it.
type HistorySource interface {
	RecentRuns(gameID string, limit int) ([]storage.Run, error)
	ResultCounts(gameID string) ([]storage.ResultCount, error)
}

// resultFilters cycle with tab. Empty shows every run.
var resultFilters = []string{"", "won", "timed_out"}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Filter, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filter result"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the journal screen.
type HistoryModel struct {
	source HistorySource
	gameID string
	limit  int

	runs   []storage.Run
	counts []storage.ResultCount
	err    error
	filter int

	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	quitting bool
}

// NewHistoryModel creates a journal viewer for one game.
func NewHistoryModel(source HistorySource, gameID string, limit, width, height int) HistoryModel {
	m := HistoryModel{
		source: source,
		gameID: gameID,
		limit:  limit,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with columns sized to the screen.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 13},
		{Title: "Player", Width: 12},
		{Title: "Result", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Pairs", Width: 6},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the journal and refreshes the table.
func (m *HistoryModel) load() {
	m.runs, m.counts, m.err = nil, nil, nil
	if m.source != nil {
		runs, err := m.source.RecentRuns(m.gameID, m.limit)
		if err != nil {
			m.err = err
		} else {
			m.runs = runs
		}
		if counts, err := m.source.ResultCounts(m.gameID); err == nil {
			m.counts = counts
		}
	}
	m.updateTableRows()
}

// visible returns the runs that pass the current filter.
func (m HistoryModel) visible() []storage.Run {
	want := resultFilters[m.filter]
	if want == "" {
		return m.runs
	}
	out := make([]storage.Run, 0, len(m.runs))
	for _, r := range m.runs {
		if r.Result == want {
			out = append(out, r)
		}
	}
	return out
}

// updateTableRows updates the table with the visible runs.
func (m *HistoryModel) updateTableRows() {
	runs := m.visible()
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = RunRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// RunRow formats one run for display.
func RunRow(r storage.Run) table.Row {
	player := r.Player
	if player == "" {
		player = "-"
	}
	return table.Row{
		r.CreatedAt.Local().Format("Jan 02 15:04"),
		player,
		ResultLabel(r.Result),
		fmt.Sprintf("%d", r.Level),
		fmt.Sprintf("%d", r.Matched),
		r.Duration.Round(time.Second).String(),
	}
}

// ResultLabel returns the display text for a stored result.
func ResultLabel(result string) string {
	switch result {
	case "won":
		return "won"
	case "timed_out":
		return "time's up"
	default:
		return result
	}
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(resultFilters)
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n")

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(dimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// summary describes the filter and per-result totals.
func (m HistoryModel) summary() string {
	filter := "all runs"
	if f := resultFilters[m.filter]; f != "" {
		filter = ResultLabel(f) + " only"
	}

	parts := []string{"showing " + filter}
	for _, c := range m.counts {
		parts = append(parts, fmt.Sprintf("%s: %d", ResultLabel(c.Result), c.Count))
	}
	return strings.Join(parts, " · ")
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.err.Error())
	case len(m.visible()) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish or run out of time to add one!")
	}
	return m.table.View()
}

// Filter returns the active result filter; empty means every run.
func (m HistoryModel) Filter() string {
	return resultFilters[m.filter]
}

// VisibleRuns returns the runs currently listed.
func (m HistoryModel) VisibleRuns() []storage.Run {
	return m.visible()
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunHistory runs the journal screen until the user quits.
func RunHistory(source HistorySource, gameID string, limit, width, height int) error {
	model := NewHistoryModel(source, gameID, limit, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
