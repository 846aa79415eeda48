package sim

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// updateFire gates the trigger by cooldown. Automatic weapons fire every
// tick the trigger is held; manual weapons need a release between shots.
func (w *World) updateFire(in Intent) {
	a := &w.avatar
	if a.Defeated {
		return
	}
	if !in.Fire {
		w.fireLatch = false
		return
	}
	if a.Cooldown > 0 {
		return
	}
	if !a.Weapon.Automatic {
		if w.fireLatch {
			return
		}
		w.fireLatch = true
	}
	w.fire(in.Aim)
}

// fire spawns the equipped weapon's projectiles toward target.
func (w *World) fire(target core.Vec) {
	a := &w.avatar
	weapon := a.Weapon
	a.Cooldown = weapon.FireInterval

	start := a.Center()
	angle := target.Sub(start).Angle()
	a.FacingRight = target.X > start.X

	shot := Projectile{
		Radius:      w.cfg.Combat.ProjectileRadius,
		Damage:      weapon.Damage,
		Owner:       OwnerAvatar,
		Pierce:      weapon.Pierce,
		Explosive:   weapon.Explosive(),
		BlastRadius: weapon.BlastRadius,
	}

	if weapon.Pellets > 0 {
		// Pellets leave from the muzzle height of the avatar center
		muzzle := core.Vec{X: start.X + math.Cos(angle)*weapon.MuzzleOffset, Y: start.Y}
		for i := 0; i < weapon.Pellets; i++ {
			spread := (w.rng.Float64() - 0.5) * w.cfg.Combat.PelletSpread
			p := shot
			p.Pos = muzzle
			p.Vel = core.FromAngle(angle+spread, weapon.ProjectileSpeed)
			w.projectiles = append(w.projectiles, p)
		}
		w.emit(ShotFiredEvent{Weapon: weapon.Name, Projectiles: weapon.Pellets})
		return
	}

	shot.Pos = start.Add(core.FromAngle(angle, weapon.MuzzleOffset))
	shot.Vel = core.FromAngle(angle, weapon.ProjectileSpeed)
	w.projectiles = append(w.projectiles, shot)
	w.emit(ShotFiredEvent{Weapon: weapon.Name, Projectiles: 1})
}
