package sim

import (
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// Snapshot is a read-only copy of everything a presentation layer draws.
// Slices are fresh copies and may be retained by the caller.
type Snapshot struct {
	Tick           uint64
	Score          int
	Wave           int
	WaveInProgress bool
	Paused         bool
	GameOver       bool

	World       core.Box
	Avatar      AvatarView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Effects     []EffectView
	Texts       []TextView
	Platforms   []core.Box
	Shop        ShopView
}

// AvatarView is the drawable avatar state.
type AvatarView struct {
	Box         core.Box
	Health      float64
	MaxHealth   float64
	FacingRight bool
	Grounded    bool
	Weapon      Weapon
	WeaponSlot  int
	Cooldown    int
	Armor       Armor
}

// EnemyView is the drawable enemy state.
type EnemyView struct {
	ID          EnemyID
	Kind        EnemyKind
	Box         core.Box
	Health      float64
	MaxHealth   float64
	FacingRight bool
	Color       core.Color
}

// ProjectileView is the drawable projectile state.
type ProjectileView struct {
	Pos       core.Vec
	Radius    float64
	Owner     Owner
	Explosive bool
	Color     core.Color
}

// EffectView is the drawable explosion state.
type EffectView struct {
	Center  core.Vec
	Radius  float64 // Current visual radius
	Opacity float64
}

// TextView is a drawable floating damage number.
type TextView struct {
	Pos     core.Vec
	Value   float64
	Opacity float64
	Color   core.Color
}

// ShopView lists shop items with their affordability.
type ShopView struct {
	HealthCost    int
	HealthRestore float64
	CanBuyHealth  bool
	Armor         []ShopArmor
}

// ShopArmor is one armor tier as offered by the shop.
type ShopArmor struct {
	Slot    int
	Armor   Armor
	CanBuy  bool
	Current bool
}

// Enemy colors by variant.
var enemyColors = map[EnemyKind]core.Color{
	KindWalker:  core.ColorRed,
	KindShooter: core.ColorYellow,
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	a := w.avatar
	snap := Snapshot{
		Tick:           w.tick,
		Score:          w.ledger.Points(),
		Wave:           w.wave.Number,
		WaveInProgress: w.wave.InProgress,
		Paused:         w.paused,
		GameOver:       w.gameOver,
		World:          core.NewBox(0, 0, w.cfg.World.Width, w.cfg.World.Height),
		Avatar: AvatarView{
			Box:         a.Box,
			Health:      a.Health,
			MaxHealth:   a.MaxHealth,
			FacingRight: a.FacingRight,
			Grounded:    a.Grounded,
			Weapon:      a.Weapon,
			WeaponSlot:  weaponSlot(a.Weapon.Name),
			Cooldown:    a.Cooldown,
			Armor:       a.Armor,
		},
		Enemies:     make([]EnemyView, 0, len(w.enemies)),
		Projectiles: make([]ProjectileView, 0, len(w.projectiles)),
		Effects:     make([]EffectView, 0, len(w.effects)),
		Texts:       make([]TextView, 0, len(w.texts)),
		Platforms:   append([]core.Box(nil), w.level.Platforms...),
		Shop:        w.shopView(),
	}

	for _, e := range w.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:          e.ID,
			Kind:        e.Kind,
			Box:         e.Box,
			Health:      e.Health,
			MaxHealth:   e.MaxHealth,
			FacingRight: e.FacingRight,
			Color:       enemyColors[e.Kind],
		})
	}

	for _, p := range w.projectiles {
		c := core.ColorBrightYellow
		switch {
		case p.Owner == OwnerEnemy:
			c = core.ColorBrightRed
		case p.Explosive:
			c = core.ColorOrange
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:       p.Pos,
			Radius:    p.Radius,
			Owner:     p.Owner,
			Explosive: p.Explosive,
			Color:     c,
		})
	}

	for i := range w.effects {
		x := &w.effects[i]
		opacity := 0.0
		if x.MaxLife > 0 {
			opacity = float64(x.Life) / float64(x.MaxLife)
		}
		snap.Effects = append(snap.Effects, EffectView{Center: x.Center, Radius: x.VisualRadius(), Opacity: opacity})
	}

	for _, t := range w.texts {
		snap.Texts = append(snap.Texts, TextView{Pos: t.Pos, Value: t.Value, Opacity: t.Opacity(), Color: t.Color})
	}

	return snap
}

func (w *World) shopView() ShopView {
	shop := ShopView{
		HealthCost:    w.cfg.Economy.HealthCost,
		HealthRestore: w.cfg.Economy.HealthRestore,
		CanBuyHealth:  w.canBuyHealth(),
	}
	for i, armor := range armorCatalog {
		shop.Armor = append(shop.Armor, ShopArmor{
			Slot:    i + 1,
			Armor:   armor,
			CanBuy:  !w.gameOver && w.canUpgradeTo(armor),
			Current: armor.Name == w.avatar.Armor.Name,
		})
	}
	return shop
}

func weaponSlot(name string) int {
	for i, weapon := range weaponCatalog {
		if weapon.Name == name {
			return i + 1
		}
	}
	return 0
}

// Score returns the spendable points.
func (w *World) Score() int { return w.ledger.Points() }

// Wave returns the current wave state.
func (w *World) Wave() WaveState { return w.wave }

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool { return w.paused }

// GameOver reports whether the avatar was defeated.
func (w *World) GameOver() bool { return w.gameOver }

// Tick returns the number of simulated ticks since Reset.
func (w *World) Tick() uint64 { return w.tick }

// Avatar returns a copy of the avatar.
func (w *World) Avatar() Avatar { return w.avatar }

// EnemyCount returns the number of live enemies.
func (w *World) EnemyCount() int { return len(w.enemies) }

// Level returns the current platform layout.
func (w *World) Level() Level { return w.level }

// Config returns the configuration the world was built with.
func (w *World) Config() config.SkirmishConfig { return w.cfg }
