// Package skirmish adapts the simulation engine to the terminal platform.
// It maps cell-based input frames to world-space intents and draws world
// snapshots into a cell screen.
package skirmish

import (
	"fmt"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish/sim"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

// Layout rows reserved around the play field.
const (
	HUDRows    = 1 // Score, wave and weapon line at the top
	StatusRows = 1 // Health, armor and weapon slots at the bottom
)

// GameID is the registry ID of the skirmish game.
const GameID = "skirmish"

// aimReach is how far ahead of the avatar the default aim point sits when
// no mouse position is known.
const aimReach = 200

// Game wraps a sim.World for a terminal host.
type Game struct {
	cfg       config.SkirmishConfig
	sched     sim.Scheduler
	world     *sim.World
	rc        core.RuntimeConfig
	events    []sim.Event
	notice    string // Last message flashed in the HUD
	noticeTTL int
}

// New creates a game. sched fires the inter-wave delay; nil starts the next
// wave immediately.
func New(cfg config.SkirmishConfig, sched sim.Scheduler) *Game {
	return &Game{cfg: cfg, sched: sched}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skirmish"
}

// Reset starts a new run seeded from the runtime config.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	if g.world == nil {
		g.world = sim.NewWorld(sim.Options{Config: g.cfg, Seed: rc.Seed, Scheduler: g.sched})
	} else {
		g.world.Reset(rc.Seed)
	}
	g.events = nil
	g.notice = ""
	g.noticeTTL = 0
}

// Resize updates the screen dimensions used for aim mapping without
// restarting the run.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW = w
	g.rc.ScreenH = h
}

// Step advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.world.Step(g.Intent(in))

	var msgs []string
	for _, e := range g.events {
		if msg, ok := Describe(e); ok {
			msgs = append(msgs, msg)
		}
	}
	if len(msgs) > 0 {
		g.notice = msgs[len(msgs)-1]
		g.noticeTTL = 2 * max(g.rc.TickRate, 1)
	} else if g.noticeTTL > 0 {
		g.noticeTTL--
		if g.noticeTTL == 0 {
			g.notice = ""
		}
	}

	return core.StepResult{State: g.State(), Messages: msgs}
}

// Events returns the engine events produced by the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Wave:     g.world.Wave().Number,
		GameOver: g.world.GameOver(),
		Paused:   g.world.Paused(),
	}
}

// Snapshot returns the full world snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Intent converts a cell-based input frame into a world intent.
func (g *Game) Intent(in core.InputFrame) sim.Intent {
	intent := sim.Intent{
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Jump:        in.Has(core.ActionJump),
		Fire:        in.Has(core.ActionFire),
		WeaponSlot:  in.WeaponSlot,
		ArmorSlot:   in.ArmorSlot,
		BuyHealth:   in.Has(core.ActionBuyHealth),
		TogglePause: in.Has(core.ActionPause),
	}

	if in.HasAim {
		intent.Aim = g.WorldPoint(in.AimCol, in.AimRow)
	} else {
		a := g.world.Avatar()
		dir := -1.0
		if a.FacingRight {
			dir = 1.0
		}
		intent.Aim = a.Center().Add(core.Vec{X: dir * aimReach})
	}
	return intent
}

// WorldPoint maps the center of a screen cell to world coordinates.
func (g *Game) WorldPoint(col, row int) core.Vec {
	v := g.viewport()
	return core.Vec{
		X: (float64(col) + 0.5) / v.sx,
		Y: (float64(row-v.top) + 0.5) / v.sy,
	}
}

// Describe turns notable events into a one-line message.
func Describe(e sim.Event) (string, bool) {
	switch ev := e.(type) {
	case sim.WaveClearedEvent:
		return fmt.Sprintf("Wave %d cleared! +%d points", ev.Wave, ev.Reward), true
	case sim.WaveStartedEvent:
		return fmt.Sprintf("Wave %d: %d enemies", ev.Wave, ev.Enemies), true
	case sim.PurchaseEvent:
		if ev.Outcome == sim.PurchaseOK {
			return fmt.Sprintf("Bought %s for %d", ev.Item, ev.Cost), true
		}
		return fmt.Sprintf("%s: %s", ev.Item, ev.Outcome), true
	case sim.WeaponSwitchedEvent:
		return "Equipped " + ev.Weapon, true
	case sim.AvatarDefeatedEvent:
		return fmt.Sprintf("Defeated on wave %d", ev.Wave), true
	}
	return "", false
}

func init() {
	registry.Register(GameID, func(env registry.Env) registry.Game {
		var sched sim.Scheduler
		if env.Scheduler != nil {
			sched = env.Scheduler
		}
		return New(env.Config, sched)
	})
}
