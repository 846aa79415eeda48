package skirmish

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
)

func testSimulation() SimulationConfig {
	return SimulationConfig{
		Config:   config.DefaultSkirmishConfig(),
		Seed:     11,
		Runs:     2,
		MaxSteps: 4000,
		TickRate: 60,
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(context.Background(), testSimulation())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	b, err := Simulate(context.Background(), testSimulation())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("reports = %d/%d, expected 2", len(a), len(b))
	}
	for i := range a {
		ra, rb := a[i].Run, b[i].Run
		if ra.Seed != 11+int64(i) {
			t.Errorf("run %d seed = %d, expected %d", i, ra.Seed, 11+int64(i))
		}
		if ra.Waves != rb.Waves || ra.Score != rb.Score || ra.Ticks != rb.Ticks || ra.Defeated != rb.Defeated {
			t.Errorf("run %d differs: %+v vs %+v", i, ra, rb)
		}
		if len(a[i].Waves) != len(b[i].Waves) {
			t.Errorf("run %d cleared %d vs %d waves", i, len(a[i].Waves), len(b[i].Waves))
		}
		if ra.ID == rb.ID {
			t.Error("each run should get its own ID")
		}
	}
}

func TestSimulateMaxSteps(t *testing.T) {
	sc := testSimulation()
	sc.Runs = 1
	sc.MaxSteps = 10

	reports, err := Simulate(context.Background(), sc)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if r := reports[0].Run; r.Ticks > 10 || r.Defeated {
		t.Errorf("run = %+v, expected a cut run of at most 10 ticks", r)
	}
}

func TestSimulateJournal(t *testing.T) {
	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		t.Fatalf("journal.Open() failed: %v", err)
	}
	defer j.Close()

	sc := testSimulation()
	sc.Journal = j
	reports, err := Simulate(context.Background(), sc)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	runs, err := j.RecentRuns(GameID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != len(reports) {
		t.Errorf("journaled runs = %d, expected %d", len(runs), len(reports))
	}
	for _, r := range reports {
		waves, err := j.Waves(r.Run.ID)
		if err != nil {
			t.Fatalf("Waves() failed: %v", err)
		}
		if len(waves) != len(r.Waves) {
			t.Errorf("journaled waves = %d, expected %d", len(waves), len(r.Waves))
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := Simulate(ctx, testSimulation())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() error = %v, expected context.Canceled", err)
	}
	if len(reports) != 0 {
		t.Errorf("reports = %d, expected none", len(reports))
	}
}
