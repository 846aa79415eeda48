package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish"
	"github.com/vovakirdan/tui-skirmish/internal/journal"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
	msgs   []string
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Wave: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state, Messages: g.msgs}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

var t0 = time.Unix(5000, 0)

func newTestModel(g *fakeGame) Model {
	m := NewModel(Options{
		Game:   g,
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	})
	m.now = func() time.Time { return t0 }
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func TestModelHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if !g.last().Has(core.ActionRight) {
		t.Error("Right should be held on the tick after the press")
	}

	m = update(t, m, TickMsg(t0.Add(33*time.Millisecond)))
	if !g.last().Has(core.ActionRight) {
		t.Error("Right should still be held inside the hold window")
	}

	update(t, m, TickMsg(t0.Add(DefaultHoldWindow+time.Millisecond)))
	if g.last().Has(core.ActionRight) {
		t.Error("Right should be released once the hold window passes")
	}
}

func TestModelCommandsLastOneTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey('w'))
	m = update(t, m, runeKey('4'))
	m = update(t, m, TickMsg(t0))
	if f := g.last(); !f.Has(core.ActionJump) || f.WeaponSlot != 4 {
		t.Errorf("first tick frame = %+v, expected jump and weapon slot 4", f)
	}

	update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if f := g.last(); f.Has(core.ActionJump) || f.WeaponSlot != 0 {
		t.Errorf("second tick frame = %+v, expected no commands", f)
	}
}

func TestModelMouse(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(t0))
	if f := g.last(); !f.HasAim || f.AimCol != 12 || f.AimRow != 7 || f.Has(core.ActionFire) {
		t.Errorf("frame = %+v, expected aim at (12, 7) without fire", f)
	}

	m = update(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for i := 0; i < 30; i++ {
		m = update(t, m, TickMsg(t0.Add(time.Duration(i)*time.Second)))
		if !g.last().Has(core.ActionFire) {
			t.Fatalf("tick %d: fire should stay held while the button is down", i)
		}
	}

	m = update(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease})
	update(t, m, TickMsg(t0.Add(time.Minute)))
	if f := g.last(); f.Has(core.ActionFire) || f.AimCol != 20 {
		t.Errorf("frame = %+v, expected fire released with aim kept", f)
	}
}

func TestModelSlotWhilePaused(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	g.state.Paused = true
	m = update(t, m, TickMsg(t0))
	m = update(t, m, runeKey('2'))
	update(t, m, TickMsg(t0))

	if f := g.last(); f.ArmorSlot != 2 || f.WeaponSlot != 0 {
		t.Errorf("frame = %+v, expected armor slot 2 while paused", f)
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	// R before game over is passed through but ignored by the host
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(t0))
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg(t0))
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(t0))
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 after restart", g.resets)
	}
	if m.State().GameOver {
		t.Error("State() should be fresh after restart")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("View() should contain the game screen")
	}
	if !strings.Contains(view, "shop") || !strings.Contains(view, "quit") {
		t.Errorf("View() should end with the help line, got %q", view[len(view)-80:])
	}
	if m.screen.Height() != 24-helpRows {
		t.Errorf("screen height = %d, expected %d", m.screen.Height(), 24-helpRows)
	}
}

func TestModelJournalsRun(t *testing.T) {
	j, err := journal.Open(journal.MemoryPath)
	if err != nil {
		t.Fatalf("journal.Open() failed: %v", err)
	}
	defer j.Close()

	g := &fakeGame{}
	m := NewModel(Options{
		Game:    g,
		Journal: j,
		Config:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9},
	})
	m.Init()

	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(t0))
	}
	g.state = core.GameState{Wave: 3, Score: 120, GameOver: true}
	m = update(t, m, TickMsg(t0))
	update(t, m, TickMsg(t0))

	runs, err := j.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected exactly one journaled run", len(runs))
	}
	if r := runs[0]; r.Waves != 3 || r.Score != 120 || r.Seed != 9 || r.Ticks != 6 || !r.Defeated {
		t.Errorf("run = %+v, expected wave 3 score 120 in 6 ticks", r)
	}
}

func TestModelWaveTimer(t *testing.T) {
	timers := NewTimerQueue()
	g := skirmish.New(config.DefaultSkirmishConfig(), timers)
	m := NewModel(Options{
		Game:   g,
		Timers: timers,
		Config: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3},
	})
	m.Init()

	// Schedule a callback the way the game does and deliver it as a message
	fired := false
	timers.After(time.Second, func() { fired = true })
	next, cmd := m.Update(TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should return commands")
	}
	if timers.Pending() != 1 {
		t.Fatalf("Pending() = %d, expected 1", timers.Pending())
	}

	update(t, next.(Model), TimerMsg{id: 1})
	if !fired {
		t.Error("TimerMsg should run the queued callback on Update")
	}
	if timers.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", timers.Pending())
	}
}
