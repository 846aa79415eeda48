package sim

import (
	"math"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// Autopilot produces intents from snapshots for headless runs.
// It targets the nearest enemy, keeps a preferred distance and spends
// points on health and armor upgrades whenever it can.
type Autopilot struct {
	PreferredRange float64
	HealThreshold  float64 // Health fraction under which packs are bought
	JumpEvery      int     // Ticks between jumps while an enemy is above
	fireHeld       bool
}

// NewAutopilot creates an autopilot with playable defaults.
func NewAutopilot() *Autopilot {
	return &Autopilot{PreferredRange: 180, HealThreshold: 0.5, JumpEvery: 30}
}

// Decide returns the intent for the next tick.
func (ap *Autopilot) Decide(s Snapshot) Intent {
	var in Intent
	if s.GameOver || !s.WaveInProgress {
		return in
	}

	a := s.Avatar
	if s.Shop.CanBuyHealth && a.Health < a.MaxHealth*ap.HealThreshold {
		in.BuyHealth = true
	}
	for i := len(s.Shop.Armor) - 1; i >= 0; i-- {
		if s.Shop.Armor[i].CanBuy {
			in.ArmorSlot = s.Shop.Armor[i].Slot
			break
		}
	}

	target, ok := nearestEnemy(a.Box.Center(), s.Enemies)
	if !ok {
		ap.fireHeld = false
		return in
	}

	center := target.Box.Center()
	in.Aim = center
	dx := center.X - a.Box.Center().X
	dist := math.Abs(dx)

	switch {
	case dist > ap.PreferredRange:
		in.Left, in.Right = dx < 0, dx > 0
	case dist < ap.PreferredRange/2:
		in.Left, in.Right = dx > 0, dx < 0
	}

	if center.Y < a.Box.Y && ap.JumpEvery > 0 && s.Tick%uint64(ap.JumpEvery) == 0 {
		in.Jump = true
	}

	// Manual weapons need the trigger released between shots
	if a.Weapon.Automatic {
		in.Fire = true
	} else {
		in.Fire = !ap.fireHeld
	}
	ap.fireHeld = in.Fire
	return in
}

func nearestEnemy(from core.Vec, enemies []EnemyView) (EnemyView, bool) {
	best, bestDist := EnemyView{}, math.Inf(1)
	for _, e := range enemies {
		if d := core.Distance(from, e.Box.Center()); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}
