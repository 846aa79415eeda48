package skirmish

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish/sim"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
)

// SimulationConfig configures a batch of headless autopilot runs.
type SimulationConfig struct {
	Config   config.SkirmishConfig
	Seed     int64  // Run i plays with Seed+i
	Runs     int    // Number of runs; at least one is played
	MaxSteps uint64 // Steps after which a run is cut short; zero means no limit
	TickRate int
	Journal  *journal.Journal // Optional; every run is saved when set
	Logger   *log.Logger      // Optional; discarded when nil
}

// RunReport is the outcome of one headless run.
type RunReport struct {
	Run   journal.Run
	Waves []journal.WaveRecord
}

// Simulate plays the configured runs synchronously on a manual clock.
// It stops early, returning the finished reports, when ctx is cancelled.
func Simulate(ctx context.Context, sc SimulationConfig) ([]RunReport, error) {
	logger := sc.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runs := max(sc.Runs, 1)
	reports := make([]RunReport, 0, runs)
	for i := range runs {
		seed := sc.Seed + int64(i)
		report, err := simulateRun(ctx, sc, seed, logger.With("run", i+1, "seed", seed))
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func simulateRun(ctx context.Context, sc SimulationConfig, seed int64, logger *log.Logger) (RunReport, error) {
	runner := sim.NewRunner(sim.Options{Config: sc.Config, Seed: seed}, sc.TickRate)
	world := runner.World
	pilot := sim.NewAutopilot()
	rec := journal.NewRecorder(GameID, seed)

	for step := uint64(0); !world.GameOver(); step++ {
		if sc.MaxSteps > 0 && step >= sc.MaxSteps {
			logger.Info("run cut short", "steps", step, "wave", world.Wave().Number)
			break
		}
		if step%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return RunReport{}, fmt.Errorf("simulation interrupted: %w", err)
			}
		}

		events := runner.Tick(pilot.Decide(world.Snapshot()))
		avatar := world.Avatar()
		rec.Observe(world.Tick(), avatar.Health, events)
		logEvents(logger, events)
	}

	run, waves := rec.Finish(world.Score())
	if sc.Journal != nil {
		if _, err := sc.Journal.SaveRun(run, waves); err != nil {
			return RunReport{}, err
		}
	}
	return RunReport{Run: run, Waves: waves}, nil
}

func logEvents(logger *log.Logger, events []sim.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case sim.WaveStartedEvent:
			logger.Debug("wave started", "wave", ev.Wave, "enemies", ev.Enemies, "shooters", ev.Shooters, "platforms", ev.Platforms)
		case sim.WaveClearedEvent:
			logger.Info("wave cleared", "wave", ev.Wave, "reward", ev.Reward, "score", ev.Score)
		case sim.EnemyKilledEvent:
			logger.Debug("enemy killed", "id", ev.ID, "kind", ev.Kind, "reward", ev.Reward)
		case sim.PurchaseEvent:
			if ev.Outcome == sim.PurchaseOK {
				logger.Debug("purchase", "item", ev.Item, "cost", ev.Cost)
			}
		case sim.AvatarDefeatedEvent:
			logger.Info("avatar defeated", "wave", ev.Wave, "score", ev.Score)
		}
	}
}
