package sim

import (
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

var testGround = core.NewBox(0, 550, 1000, 50)

func testConfig() config.SkirmishConfig {
	return config.DefaultSkirmishConfig()
}

func newTestWorld(seed int64) (*World, *ManualClock) {
	clock := NewManualClock()
	w := NewWorld(Options{Config: testConfig(), Seed: seed, Scheduler: clock})
	return w, clock
}

// arena strips the generated level down to a flat ground and leaves one
// inert enemy in the far left corner so the wave stays in progress. The
// avatar stands on the ground at x=900.
func arena(w *World) {
	w.level = Level{Platforms: []core.Box{testGround}, Parents: []int{-1}, SafeZone: testGround}
	w.projectiles = nil
	w.effects = nil
	w.texts = nil
	w.enemies = []Enemy{inertEnemy(999, 0)}

	w.avatar.Box.X = 900
	w.avatar.Box.Y = testGround.Y - w.avatar.Box.H
	w.avatar.VelX, w.avatar.VelY = 0, 0
	w.avatar.Grounded = true
	w.flush()
}

// inertEnemy is a Walker standing on testGround that never moves and
// survives anything short of a million damage.
func inertEnemy(id EnemyID, x float64) Enemy {
	e := newWalker(id, x, testGround.Y-testConfig().Enemies.Height, testConfig().Enemies)
	e.Aggro = 0
	e.Health, e.MaxHealth = 1e6, 1e6
	return e
}

func enemyIndex(w *World, id EnemyID) int {
	for i := range w.enemies {
		if w.enemies[i].ID == id {
			return i
		}
	}
	return -1
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}
