package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
)

var (
	flagRuns     int
	flagMaxSteps uint64
	flagWaves    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot games",
	Long: `Play games without a terminal, driven by a simple autopilot that
chases the nearest enemy and buys upgrades when it can. Runs are
deterministic: the same --seed, --config and --fps give the same report.

Run i is played with seed+i. Results are recorded in the run journal,
which lives in memory unless --journal names a file.

Examples:
  skirmish simulate
  skirmish simulate --runs 50 --seed 7
  skirmish simulate --runs 10 --waves --journal ./runs.db
  skirmish simulate --config ./hard.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs to play")
	simulateCmd.Flags().Uint64Var(&flagMaxSteps, "max-steps", 60*60*30, "Steps after which a run is cut short (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagWaves, "waves", false, "Also print every cleared wave")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "skirmish-sim")
	if err != nil {
		fail("%v", err)
	}

	gameCfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	j, err := journal.Open(flagJournalPath)
	if err != nil {
		fail("%v", err)
	}
	defer j.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("simulating", "runs", flagRuns, "seed", seed, "fps", flagFPS)
	start := time.Now()
	reports, err := skirmish.Simulate(ctx, skirmish.SimulationConfig{
		Config:   gameCfg,
		Seed:     seed,
		Runs:     flagRuns,
		MaxSteps: flagMaxSteps,
		TickRate: flagFPS,
		Journal:  j,
		Logger:   logger,
	})
	if err != nil {
		logger.Warn("simulation stopped early", "error", err, "finished", len(reports))
	}
	logger.Info("simulation finished", "runs", len(reports), "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Println(runsTable(reports))
	if flagWaves {
		fmt.Println(wavesTable(reports))
	}

	stats, err := j.Stats(skirmish.GameID)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Runs: %d  Best wave: %d  Best score: %d  Avg wave: %.2f  Avg score: %.0f\n",
		stats.Runs, stats.BestWave, stats.BestScore, stats.AvgWave, stats.AvgScore)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func styledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func runsTable(reports []skirmish.RunReport) *table.Table {
	t := styledTable("Run", "Seed", "Wave", "Score", "Ticks", "Result")
	for i, r := range reports {
		result := "cut short"
		if r.Run.Defeated {
			result = "defeated"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.FormatInt(r.Run.Seed, 10),
			strconv.Itoa(r.Run.Waves),
			strconv.Itoa(r.Run.Score),
			strconv.FormatUint(r.Run.Ticks, 10),
			result,
		)
	}
	return t
}

func wavesTable(reports []skirmish.RunReport) *table.Table {
	t := styledTable("Run", "Wave", "Ticks", "Kills", "Score", "Health")
	for i, r := range reports {
		for _, w := range r.Waves {
			t.Row(
				strconv.Itoa(i+1),
				strconv.Itoa(w.Wave),
				strconv.FormatUint(w.Ticks, 10),
				strconv.Itoa(w.Kills),
				strconv.Itoa(w.Score),
				fmt.Sprintf("%.0f", w.Health),
			)
		}
	}
	return t
}

func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
