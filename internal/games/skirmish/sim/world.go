package sim

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// Options configures a World.
type Options struct {
	Config config.SkirmishConfig
	Seed   int64
	// Scheduler fires the inter-wave delay. Nil starts the next wave
	// immediately on clear.
	Scheduler Scheduler
}

// ImmediateScheduler runs callbacks synchronously, ignoring the delay.
type ImmediateScheduler struct{}

// After runs fn immediately.
func (ImmediateScheduler) After(_ time.Duration, fn func()) {
	fn()
}

// WaveState tracks wave progression.
type WaveState struct {
	Number     int
	InProgress bool
}

// World owns the complete simulation state. All mutation happens through
// Step, the purchase methods and scheduler callbacks, which must all run on
// one goroutine.
type World struct {
	cfg       config.SkirmishConfig
	scaling   *config.WaveScaling
	sched     Scheduler
	rng       *rand.Rand
	generator *LevelGenerator

	avatar      Avatar
	enemies     []Enemy
	projectiles []Projectile
	effects     []AreaEffect
	texts       []FloatingText
	level       Level

	ledger    Ledger
	wave      WaveState
	paused    bool
	gameOver  bool
	tick      uint64
	fireLatch bool // Set after a manual weapon fires, cleared on trigger release
	nextID    EnemyID
	epoch     uint64 // Invalidates wave timers scheduled before a Reset

	events []Event
}

// NewWorld creates a world ready to play wave 1.
func NewWorld(opts Options) *World {
	w := &World{
		cfg:     opts.Config,
		scaling: config.NewWaveScaling(opts.Config.Waves),
		sched:   opts.Scheduler,
	}
	if w.sched == nil {
		w.sched = ImmediateScheduler{}
	}
	w.Reset(opts.Seed)
	return w
}

// Reset restarts the game from wave 1 with a fresh avatar and score.
func (w *World) Reset(seed int64) {
	w.epoch++
	w.rng = rand.New(rand.NewSource(seed))
	w.generator = NewLevelGenerator(w.cfg.World, w.cfg.Physics, w.cfg.Level, w.rng)

	w.avatar = newAvatar(w.cfg.Avatar)
	w.ledger = Ledger{}
	w.wave = WaveState{Number: 1}
	w.paused = false
	w.gameOver = false
	w.tick = 0
	w.fireLatch = false
	w.events = nil

	w.beginWave()
}

// Step advances the world by one tick and returns the events produced since
// the previous Step, including those fired by scheduler callbacks.
func (w *World) Step(in Intent) []Event {
	if w.gameOver {
		return w.flush()
	}

	if in.TogglePause {
		w.paused = !w.paused
		if !w.paused {
			w.fireLatch = false
		}
		w.emit(PauseToggledEvent{Paused: w.paused})
	}
	w.applyCommands(in)

	if w.paused || !w.wave.InProgress {
		return w.flush()
	}

	w.tick++

	if in.Jump {
		w.avatar.Jump(w.cfg.Physics.JumpSpeed)
	}
	w.avatar.update(in, w.cfg, w.level.Platforms)
	w.updateFire(in)
	w.updateEnemies()
	w.resolveProjectiles()
	w.resolveEffects()
	w.resolveContact()
	w.ageTexts()

	if w.avatar.Defeated {
		w.gameOver = true
		// A wave emptied on the same tick still pays out
		w.checkWaveClear()
		w.emit(AvatarDefeatedEvent{Wave: w.wave.Number, Score: w.ledger.Points()})
		return w.flush()
	}
	w.checkWaveClear()

	return w.flush()
}

// SwitchWeapon equips the weapon at a 1-based slot.
func (w *World) SwitchWeapon(slot int) bool {
	weapon, ok := WeaponBySlot(slot)
	if !ok || w.gameOver {
		return false
	}
	if weapon.Name != w.avatar.Weapon.Name {
		w.avatar.Weapon = weapon
		w.emit(WeaponSwitchedEvent{Weapon: weapon.Name})
	}
	return true
}

func (w *World) applyCommands(in Intent) {
	if in.WeaponSlot != 0 {
		w.SwitchWeapon(in.WeaponSlot)
	}
	if in.BuyHealth {
		w.BuyHealth()
	}
	if in.ArmorSlot != 0 {
		w.BuyArmor(in.ArmorSlot)
	}
}

func (w *World) updateEnemies() {
	for i := range w.enemies {
		e := &w.enemies[i]
		e.applyGravity(w.cfg.Physics.Gravity, w.cfg.World.Height, w.level.Platforms)
		if p, ok := e.think(&w.avatar, w.cfg); ok {
			w.projectiles = append(w.projectiles, p)
		}
	}
}

// damageEnemy applies damage to the enemy at index i. A killing blow awards
// points and removes the enemy in the same call. Returns true if removed.
func (w *World) damageEnemy(i int, damage float64) bool {
	e := &w.enemies[i]
	if e.Health <= 0 {
		return false
	}
	e.Health -= damage
	w.addText(core.Vec{X: e.Box.X + e.Box.W/2, Y: e.Box.Y}, damage, core.ColorYellow)
	if e.Health > 0 {
		return false
	}

	e.Health = 0
	reward := w.cfg.Combat.KillReward
	w.ledger.Award(reward)
	w.emit(EnemyKilledEvent{ID: e.ID, Kind: e.Kind, Reward: reward})
	w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
	return true
}

// hitAvatar applies raw damage through armor and shows the raw amount.
func (w *World) hitAvatar(raw float64) {
	a := &w.avatar
	if a.Defeated {
		return
	}
	dealt := a.TakeDamage(raw)
	w.addText(core.Vec{X: a.Box.X + a.Box.W/2, Y: a.Box.Y}, raw, core.ColorBrightRed)
	w.emit(AvatarHitEvent{Raw: raw, Dealt: dealt, Health: a.Health})
}

// resolveContact lets overlapping Walkers land a hit with a fixed chance per tick.
func (w *World) resolveContact() {
	chance := w.cfg.Enemies.Walker.ContactChance
	for i := range w.enemies {
		if w.avatar.Defeated {
			return
		}
		e := &w.enemies[i]
		if e.contactHit(&w.avatar) && w.rng.Float64() < chance {
			w.hitAvatar(e.Walker.ContactDamage)
		}
	}
}

func (w *World) addText(pos core.Vec, value float64, c core.Color) {
	life := w.cfg.Combat.FloatingTextLifetime
	w.texts = append(w.texts, FloatingText{Pos: pos, Value: value, Life: life, MaxLife: life, Color: c})
}

func (w *World) ageTexts() {
	kept := w.texts[:0]
	for _, t := range w.texts {
		t.Pos.Y -= w.cfg.Combat.FloatingTextRise
		t.Life--
		if t.Life > 0 {
			kept = append(kept, t)
		}
	}
	w.texts = kept
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) flush() []Event {
	out := w.events
	w.events = nil
	return out
}
