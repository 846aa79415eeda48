package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

// helpRows is the number of terminal rows below the game screen.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game session.
type Options struct {
	Game       registry.Game
	Timers     *TimerQueue      // Must be the scheduler the game was built with; nil if none
	Journal    *journal.Journal // Optional run journal
	Logger     *log.Logger      // Optional; discarded when nil
	Config     core.RuntimeConfig
	HoldWindow time.Duration // Zero means DefaultHoldWindow
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	timers     *TimerQueue
	journal    *journal.Journal
	logger     *log.Logger
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	latch      *holdLatch
	now        func() time.Time
	inputFrame core.InputFrame
	gameState  core.GameState
	mouseFire  bool   // Left button is down
	ticks      uint64 // Ticks stepped in the current run
	quitting   bool
	runSaved   bool // Whether the current run has been journaled
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       opts.Game,
		timers:     opts.Timers,
		journal:    opts.Journal,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1)),
		config:     cfg,
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       h,
		latch:      newHoldLatch(opts.HoldWindow),
		now:        time.Now,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TimerMsg:
		if m.timers != nil {
			m.timers.Fire(msg)
			return m, tea.Batch(m.timers.Commands()...)
		}

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if action, _ := m.keyMapper.MapKey(msg); heldAction(action) {
		m.latch.press(action, m.now())
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.Paused) {
		m.quitting = true
		m.saveRun(false)
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse aims at the pointer; the left button holds the trigger.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetAim(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.mouseFire = true
		}
	case tea.MouseActionRelease:
		m.mouseFire = false
	}

	return m, nil
}

// handleResize processes window resize events. The game scales its world
// to the new size, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.gameState = m.game.State()
		m.ticks = 0
		m.runSaved = false
		m.mouseFire = false
		m.latch.reset()
		m.inputFrame.Clear()
		m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.apply(&m.inputFrame, now)
	if m.mouseFire {
		m.inputFrame.Set(core.ActionFire)
	}

	// Run game simulation
	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !wasOver {
		m.ticks++
	}

	for _, msg := range result.Messages {
		m.logger.Info(msg, "wave", m.gameState.Wave, "score", m.gameState.Score)
	}

	// Journal the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.logger.Info("run ended", "wave", m.gameState.Wave, "score", m.gameState.Score, "ticks", m.ticks)
		m.saveRun(true)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking and arm any timers the step scheduled
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.timers != nil {
		cmds = append(cmds, m.timers.Commands()...)
	}
	return m, tea.Batch(cmds...)
}

// gameConfig is the runtime config as the game sees it: the screen above
// the help line.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// saveRun records the current run in the journal, if one is configured.
func (m *Model) saveRun(defeated bool) {
	if m.runSaved || m.journal == nil || m.ticks == 0 {
		m.runSaved = true
		return
	}
	m.runSaved = true

	run := journal.Run{
		GameID:   m.game.ID(),
		Seed:     m.config.Seed,
		Waves:    m.gameState.Wave,
		Score:    m.gameState.Score,
		Ticks:    m.ticks,
		Defeated: defeated,
	}
	if _, err := m.journal.SaveRun(run, nil); err != nil {
		m.logger.Warn("could not journal run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".skirmish", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state observed on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion drives the aim
	)

	_, err := p.Run()
	return err
}
