package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// upRight aims away from the arena's inert enemy and ground.
var upRight = core.Vec{X: 1000, Y: 0}

func countShots(w *World, in Intent, ticks int) int {
	shots := 0
	for i := 0; i < ticks; i++ {
		shots += countEvents[ShotFiredEvent](w.Step(in))
	}
	return shots
}

func TestAutomaticWeaponCadence(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(2) // M7, interval 7

	if got := countShots(w, Intent{Fire: true, Aim: upRight}, 70); got != 10 {
		t.Errorf("shots in 70 ticks = %d, expected 10", got)
	}
}

func TestManualWeaponNeedsRelease(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(1) // AWM, interval 60

	held := Intent{Fire: true, Aim: upRight}
	if got := countShots(w, held, 150); got != 1 {
		t.Fatalf("shots while held = %d, expected 1", got)
	}

	w.Step(Intent{Aim: upRight})
	if got := countShots(w, held, 1); got != 1 {
		t.Errorf("shots after release and press = %d, expected 1", got)
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(1)

	press := Intent{Fire: true, Aim: upRight}
	release := Intent{Aim: upRight}

	shots := countShots(w, press, 1)
	for i := 0; i < 10; i++ {
		shots += countShots(w, release, 1)
		shots += countShots(w, press, 1)
	}
	if shots != 1 {
		t.Errorf("shots during cooldown = %d, expected 1", shots)
	}
}

func TestFireSpawnsAtMuzzle(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(2)
	start := w.avatar.Center()
	aim := start.Add(core.Vec{X: -100})

	w.fire(aim)

	if len(w.projectiles) != 1 {
		t.Fatalf("projectiles = %d, expected 1", len(w.projectiles))
	}
	p := w.projectiles[0]
	expected := start.Add(core.Vec{X: -15})
	if math.Abs(p.Pos.X-expected.X) > 1e-9 || math.Abs(p.Pos.Y-expected.Y) > 1e-9 {
		t.Errorf("Pos = %v, expected %v", p.Pos, expected)
	}
	if w.avatar.FacingRight {
		t.Error("firing left should face left")
	}
	if w.avatar.Cooldown != 7 {
		t.Errorf("Cooldown = %d, expected 7", w.avatar.Cooldown)
	}
}

func TestPelletSpread(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w, _ := newTestWorld(seed)
		arena(w)
		w.SwitchWeapon(3) // S12K
		start := w.avatar.Center()
		aim := start.Add(core.Vec{X: 100, Y: -100})
		aimAngle := aim.Sub(start).Angle()

		w.fire(aim)

		if len(w.projectiles) != 10 {
			t.Fatalf("seed %d: pellets = %d, expected 10", seed, len(w.projectiles))
		}
		for i, p := range w.projectiles {
			if diff := math.Abs(p.Vel.Angle() - aimAngle); diff > 0.35+1e-9 {
				t.Errorf("seed %d: pellet %d off by %v, expected within 0.35", seed, i, diff)
			}
			if !p.Explosive || p.BlastRadius != 40 {
				t.Errorf("seed %d: pellet %d should be explosive with radius 40", seed, i)
			}
			if p.Pos.Y != start.Y {
				t.Errorf("seed %d: pellet %d Y = %v, expected %v", seed, i, p.Pos.Y, start.Y)
			}
		}
	}
}

func TestCrossbowPierce(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(6)

	w.fire(upRight)

	if w.projectiles[0].Pierce != 5 {
		t.Errorf("Pierce = %d, expected 5", w.projectiles[0].Pierce)
	}
}

func TestPauseResetsFireLatch(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.SwitchWeapon(1)
	w.Step(Intent{Fire: true, Aim: upRight})
	w.avatar.Cooldown = 0

	w.Step(Intent{TogglePause: true})
	events := w.Step(Intent{TogglePause: true, Fire: true, Aim: upRight})

	if countEvents[ShotFiredEvent](events) != 1 {
		t.Error("resuming with the trigger held should fire the manual weapon")
	}
}
