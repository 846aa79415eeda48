package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

type stubGame struct {
	env Env
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub Game" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type countingScheduler struct{ calls int }

func (s *countingScheduler) After(time.Duration, func()) { s.calls++ }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func(env Env) Game { return &stubGame{env: env} })

	if !Exists("stub") {
		t.Fatal("Exists(stub) = false, expected true")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub" {
			found = true
			if info.Title != "Stub Game" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub Game")
			}
		}
	}
	if !found {
		t.Error("List() does not contain stub")
	}

	sched := &countingScheduler{}
	g, err := Create("stub", Env{Scheduler: sched})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	stub, ok := g.(*stubGame)
	if !ok {
		t.Fatalf("Create() returned %T, expected *stubGame", g)
	}
	stub.env.Scheduler.After(time.Second, func() {})
	if sched.calls != 1 {
		t.Errorf("scheduler calls = %d, expected 1", sched.calls)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(Env) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate id should panic")
		}
	}()
	Register("stub-dup", func(Env) Game { return &stubGame{} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing", Env{}); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}
}
