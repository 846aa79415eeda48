package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skirmish/internal/journal"
)

// Run browser layout constants
const (
	minWidthForDetail = 90  // Minimum width to show the wave detail panel
	maxRuns           = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous run"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing journaled runs.
type RunsModel struct {
	journal  *journal.Journal
	gameID   string
	stats    journal.Stats
	runs     []journal.Run
	waves    []journal.WaveRecord // Waves of the selected run
	selected int                  // Run index the waves were loaded for
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	err      error
	quitting bool
}

// NewRunsModel creates a run browser for one game.
func NewRunsModel(j *journal.Journal, gameID string, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		journal:  j,
		gameID:   gameID,
		keys:     DefaultRunsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Wave", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Result", Width: 9},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	// Table styles
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

// load reads stats and recent runs from the journal.
func (m *RunsModel) load() {
	if m.journal == nil {
		return
	}

	stats, err := m.journal.Stats(m.gameID)
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats

	runs, err := m.journal.RecentRuns(m.gameID, maxRuns)
	if err != nil {
		m.err = err
		return
	}
	m.runs = runs
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "quit"
		if r.Defeated {
			result = "defeated"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Waves),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.loadWaves()
}

// loadWaves loads the waves of the run under the cursor.
func (m *RunsModel) loadWaves() {
	i := m.table.Cursor()
	if i == m.selected || i < 0 || i >= len(m.runs) || m.journal == nil {
		return
	}
	m.selected = i

	waves, err := m.journal.Waves(m.runs[i].ID)
	if err != nil {
		m.err = err
		m.waves = nil
		return
	}
	m.waves = waves
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.selected = -1
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	m.loadWaves()
	return m, cmd
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN JOURNAL - "+m.gameID, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("runs %d  best wave %d  best score %d  avg wave %.1f",
		m.stats.Runs, m.stats.BestWave, m.stats.BestScore, m.stats.AvgWave), m.width))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case m.err != nil:
		b.WriteString(panel.Render(fmt.Sprintf("Error: %v", m.err)))
	case len(m.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(panel.Render(emptyStyle.Render("No runs recorded yet.\nPlay or simulate with --journal to record one.")))
	case m.width >= minWidthForDetail:
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panel.Render(m.table.View()), "  ", panel.Render(m.renderWaves())))
	default:
		b.WriteString(panel.Render(m.table.View()))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWaves renders the cleared waves of the selected run.
func (m RunsModel) renderWaves() string {
	if len(m.waves) == 0 {
		return "No waves cleared"
	}

	var b strings.Builder
	b.WriteString("Wave  Ticks  Kills  Score  HP\n")
	for _, w := range m.waves {
		fmt.Fprintf(&b, "%4d  %5d  %5d  %5d  %3.0f\n", w.Wave, w.Ticks, w.Kills, w.Score, w.Health)
	}
	return strings.TrimRight(b.String(), "\n")
}

// centerText pads text to center it in the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunJournalBrowser runs the run browser screen.
func RunJournalBrowser(j *journal.Journal, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(j, gameID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
