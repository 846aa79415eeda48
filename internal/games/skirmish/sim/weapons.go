// Package sim implements the skirmish simulation and combat engine.
// It is pure game logic: one World advanced by Step, deterministic for a
// given seed and input sequence, with no rendering, input binding or I/O.
package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// Weapon is an immutable catalog entry describing how a gun fires.
type Weapon struct {
	Name            string
	Damage          float64
	FireInterval    int     // Ticks between shots
	Automatic       bool    // Fires every tick the trigger is held
	ProjectileSpeed float64 // World units per tick
	Pellets         int     // >0 only for the pellet-type weapon
	MuzzleOffset    float64 // Spawn distance from the avatar center along the aim
	SpeedModifier   float64 // Multiplies base movement speed by 1+SpeedModifier
	BlastRadius     float64 // >0 makes projectiles explosive
	Pierce          int     // Extra targets a projectile survives
	Color           core.Color
}

// Explosive reports whether this weapon's projectiles spawn an area effect.
func (w Weapon) Explosive() bool {
	return w.BlastRadius > 0
}

// ShotsPerSecond returns the nominal fire rate at the given tick rate.
func (w Weapon) ShotsPerSecond(tickRate int) float64 {
	if w.FireInterval <= 0 {
		return float64(tickRate)
	}
	return float64(tickRate) / float64(w.FireInterval)
}

var weaponCatalog = [...]Weapon{
	{Name: "AWM", Damage: 100, FireInterval: 60, ProjectileSpeed: 25, MuzzleOffset: 20, SpeedModifier: -0.25, Color: core.ColorBrown},
	{Name: "M7", Damage: 25, FireInterval: 7, Automatic: true, ProjectileSpeed: 17, MuzzleOffset: 15, Color: core.ColorGray},
	{Name: "S12K", Damage: 10, FireInterval: 18, Automatic: true, ProjectileSpeed: 12, Pellets: 10, MuzzleOffset: 10, SpeedModifier: -0.05, BlastRadius: 40, Color: core.ColorOrange},
	{Name: "G18", Damage: 7, FireInterval: 3, Automatic: true, ProjectileSpeed: 18, MuzzleOffset: 10, Color: core.ColorWhite},
	{Name: "M250", Damage: 25, FireInterval: 5, Automatic: true, ProjectileSpeed: 30, MuzzleOffset: 25, SpeedModifier: -0.15, Color: core.ColorPurple},
	{Name: "Crossbow", Damage: 50, FireInterval: 120, ProjectileSpeed: 18, MuzzleOffset: 15, Pierce: 5, Color: core.ColorLime},
	{Name: "Vector", Damage: 5, FireInterval: 2, Automatic: true, ProjectileSpeed: 16, MuzzleOffset: 10, Color: core.ColorBlue},
}

// Weapons returns the catalog in slot order (slot 1 first).
func Weapons() []Weapon {
	out := make([]Weapon, len(weaponCatalog))
	copy(out, weaponCatalog[:])
	return out
}

// WeaponBySlot returns the weapon for a 1-based slot.
func WeaponBySlot(slot int) (Weapon, bool) {
	if slot < 1 || slot > len(weaponCatalog) {
		return Weapon{}, false
	}
	return weaponCatalog[slot-1], true
}
