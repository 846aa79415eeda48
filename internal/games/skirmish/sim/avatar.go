package sim

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// Avatar is the player-controlled fighter. It persists across waves.
type Avatar struct {
	Body
	VelX     float64
	Grounded bool
	Weapon   Weapon
	Cooldown int // Ticks until the weapon may fire again
	Armor    Armor
	Defeated bool
}

func newAvatar(cfg config.AvatarConfig) Avatar {
	weapon, ok := WeaponBySlot(cfg.DefaultWeapon)
	if !ok {
		weapon = weaponCatalog[1]
	}
	return Avatar{
		Body: Body{
			Box:         core.NewBox(0, 0, cfg.Width, cfg.Height),
			Health:      cfg.MaxHealth,
			MaxHealth:   cfg.MaxHealth,
			FacingRight: true,
		},
		Weapon: weapon,
	}
}

// Speed returns the ground speed with the equipped weapon's modifier applied.
func (a *Avatar) Speed(cfg config.AvatarConfig) float64 {
	return cfg.BaseSpeed * (1 + a.Weapon.SpeedModifier)
}

// TakeDamage applies armor mitigation and returns the damage actually dealt.
// Health floors at zero and marks the avatar defeated.
func (a *Avatar) TakeDamage(raw float64) float64 {
	if a.Defeated {
		return 0
	}
	dealt := a.Armor.Mitigate(raw)
	a.Health -= dealt
	if a.Health <= 0 {
		a.Health = 0
		a.Defeated = true
	}
	return dealt
}

// Jump launches the avatar if it stands on a platform.
func (a *Avatar) Jump(speed float64) bool {
	if !a.Grounded || a.Defeated {
		return false
	}
	a.VelY = -speed
	a.Grounded = false
	return true
}

// steer applies horizontal intent. Grounded movement snaps to the target
// velocity; airborne movement blends toward it.
func (a *Avatar) steer(left, right bool, cfg config.AvatarConfig) {
	speed := a.Speed(cfg)
	accel := speed
	if !a.Grounded {
		accel = speed * cfg.AirControl
	}

	target := 0.0
	if left {
		target = -accel
		a.FacingRight = false
	}
	if right {
		target = accel
		a.FacingRight = true
	}

	if a.Grounded {
		a.VelX = target
		return
	}

	switch {
	case target == 0:
		a.VelX *= cfg.AirDamping
	case core.Sign(target) == core.Sign(a.VelX):
		if math.Abs(a.VelX) < math.Abs(target) {
			a.VelX += core.Sign(target) * cfg.AirNudge
		}
	default:
		a.VelX += target * cfg.AirReverse
	}
}

// update advances one tick of avatar motion and resolves platform contact.
func (a *Avatar) update(in Intent, cfg config.SkirmishConfig, platforms []core.Box) {
	if a.Defeated {
		return
	}

	a.steer(in.Left, in.Right, cfg.Avatar)
	a.Box.X += a.VelX
	a.clampX(cfg.World.Width)

	a.fall(cfg.Physics.Gravity)
	a.Grounded = false
	if a.Box.Y < 0 {
		a.Box.Y = 0
	}

	for _, p := range platforms {
		if !core.HorizontalOverlap(a.Box, p) {
			continue
		}
		if a.landOn(p) {
			a.Grounded = true
		} else {
			a.bumpUnder(p)
		}
	}

	if a.Cooldown > 0 {
		a.Cooldown--
	}
}

// placeOn puts the avatar centered on top of p with no velocity.
func (a *Avatar) placeOn(p core.Box) {
	a.Box.X = p.X + p.W/2 - a.Box.W/2
	a.Box.Y = p.Y - a.Box.H
	a.VelX = 0
	a.VelY = 0
}
