package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// Intent is the input for one tick, in world coordinates.
type Intent struct {
	Left, Right bool
	Jump        bool
	Fire        bool     // Trigger held this tick
	Aim         core.Vec // Aim target in world space

	// Discrete commands, applied even while paused.
	WeaponSlot  int  // 1..7 switches weapon, 0 means none
	ArmorSlot   int  // 1..7 buys an armor tier, 0 means none
	BuyHealth   bool // Buys a health pack
	TogglePause bool
}
