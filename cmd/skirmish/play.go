package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
	"github.com/vovakirdan/tui-skirmish/internal/platform/tui"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

var (
	flagLogFile    string
	flagHoldWindow int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a skirmish in this terminal.

Controls:
  A/D, Left/Right  - Move
  W/Up             - Jump
  Space, mouse     - Fire (the mouse also aims)
  1-7              - Switch weapon (buy armor while paused)
  0/H              - Buy a health pack
  P/Esc            - Pause and open the shop
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so movement keys stay
held for --hold-ms after each press or auto-repeat.

Examples:
  skirmish play
  skirmish play --seed 42
  skirmish play --config ./skirmish.yaml --log-file ./skirmish.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen is owned by the game)")
	playCmd.Flags().IntVar(&flagHoldWindow, "hold-ms", int(tui.DefaultHoldWindow.Milliseconds()), "How long a key stays held after each press, in milliseconds")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The game owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	logger, err := newLogger(logOut, "skirmish")
	if err != nil {
		fail("%v", err)
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance on the host's timer queue
	timers := tui.NewTimerQueue()
	game, err := registry.Create(skirmish.GameID, registry.Env{Config: gameCfg, Scheduler: timers})
	if err != nil {
		fail("creating game: %v", err)
	}

	// Journal is optional; an in-memory one is not worth keeping for play
	var j *journal.Journal
	if flagJournalPath != "" {
		j, err = journal.Open(flagJournalPath)
		if err != nil {
			logger.Warn("could not open run journal", "error", err)
			// Continue without journal - game still works
			j = nil
		}
	}

	// Run the game
	runErr := tui.Run(tui.Options{
		Game:       game,
		Timers:     timers,
		Journal:    j,
		Logger:     logger,
		Config:     cfg,
		HoldWindow: msDuration(flagHoldWindow),
	})

	// Close journal before potential exit
	if j != nil {
		j.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
