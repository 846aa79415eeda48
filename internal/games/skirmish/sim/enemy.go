package sim

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// EnemyID identifies an enemy within one wave. IDs restart at each spawn.
type EnemyID uint32

// EnemyKind discriminates the enemy variants.
type EnemyKind uint8

const (
	KindWalker  EnemyKind = iota // Melee, deals contact damage
	KindShooter                  // Ranged, fires at the avatar
)

// String returns a human-readable name for the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindWalker:
		return "Walker"
	case KindShooter:
		return "Shooter"
	default:
		return "Unknown"
	}
}

// WalkerTraits holds the Walker payload.
type WalkerTraits struct {
	ContactDamage float64
}

// ShooterTraits holds the Shooter payload.
type ShooterTraits struct {
	Weapon   Weapon
	Cooldown int
	Range    float64
}

// Enemy is a tagged variant: Kind selects which payload is meaningful.
type Enemy struct {
	Body
	ID      EnemyID
	Kind    EnemyKind
	Speed   float64
	Aggro   float64
	Walker  WalkerTraits
	Shooter ShooterTraits
}

func newWalker(id EnemyID, x, y float64, cfg config.EnemiesConfig) Enemy {
	return Enemy{
		Body: Body{
			Box:         core.NewBox(x, y, cfg.Width, cfg.Height),
			Health:      cfg.Walker.Health,
			MaxHealth:   cfg.Walker.Health,
			FacingRight: true,
		},
		ID:     id,
		Kind:   KindWalker,
		Speed:  cfg.Walker.Speed,
		Aggro:  cfg.AggroRange,
		Walker: WalkerTraits{ContactDamage: cfg.Walker.ContactDamage},
	}
}

func newShooter(id EnemyID, x, y float64, cfg config.EnemiesConfig) Enemy {
	weapon, ok := WeaponBySlot(cfg.Shooter.Weapon)
	if !ok {
		weapon = weaponCatalog[3]
	}
	return Enemy{
		Body: Body{
			Box:         core.NewBox(x, y, cfg.Width, cfg.Height),
			Health:      cfg.Shooter.Health,
			MaxHealth:   cfg.Shooter.Health,
			FacingRight: true,
		},
		ID:    id,
		Kind:  KindShooter,
		Speed: cfg.Shooter.Speed,
		// Shooters only pursue within firing range
		Aggro:   cfg.Shooter.Range,
		Shooter: ShooterTraits{Weapon: weapon, Range: cfg.Shooter.Range},
	}
}

// applyGravity rests the enemy on a platform, or on the world floor when it
// is on none.
func (e *Enemy) applyGravity(gravity, floor float64, platforms []core.Box) {
	e.fall(gravity)

	onPlatform := false
	for _, p := range platforms {
		if core.HorizontalOverlap(e.Box, p) && e.landOn(p) {
			onPlatform = true
		}
	}
	if !onPlatform && e.Box.Bottom() > floor {
		e.Box.Y = floor - e.Box.H
		e.VelY = 0
	}
}

// approach faces the target and steps toward it when inside aggro range and
// outside the dead zone.
func (e *Enemy) approach(target core.Vec, deadZone, worldW float64) {
	delta := target.Sub(e.Pos())
	if delta.Len() < e.Aggro {
		e.FacingRight = target.X > e.Box.X
		if math.Abs(delta.X) > deadZone {
			if e.FacingRight {
				e.Box.X += e.Speed
			} else {
				e.Box.X -= e.Speed
			}
		}
	}
	e.clampX(worldW)
}

// think runs the variant behavior. A Shooter returns the projectile it fires.
func (e *Enemy) think(avatar *Avatar, cfg config.SkirmishConfig) (Projectile, bool) {
	if e.Health <= 0 || avatar == nil {
		return Projectile{}, false
	}

	target := avatar.Pos()
	e.approach(target, cfg.Enemies.DeadZone, cfg.World.Width)

	switch e.Kind {
	case KindShooter:
		return e.shoot(target, cfg)
	default:
		return Projectile{}, false
	}
}

func (e *Enemy) shoot(target core.Vec, cfg config.SkirmishConfig) (Projectile, bool) {
	s := &e.Shooter
	s.Cooldown--

	delta := target.Sub(e.Pos())
	if delta.Len() >= s.Range || s.Cooldown > 0 {
		return Projectile{}, false
	}
	s.Cooldown = s.Weapon.FireInterval * cfg.Enemies.Shooter.CooldownMultiplier

	return Projectile{
		Pos:    e.Center(),
		Vel:    core.FromAngle(delta.Angle(), s.Weapon.ProjectileSpeed),
		Radius: cfg.Combat.ProjectileRadius,
		Damage: s.Weapon.Damage,
		Owner:  OwnerEnemy,
	}, true
}

// contactHit reports whether a Walker overlaps the avatar this tick.
func (e *Enemy) contactHit(avatar *Avatar) bool {
	return e.Kind == KindWalker && e.Health > 0 && core.BoxesOverlap(avatar.Box, e.Box)
}
