package sim

import (
	"reflect"
	"testing"
	"time"
)

func TestNewWorldStartsWaveOne(t *testing.T) {
	w, _ := newTestWorld(42)

	if w.Wave() != (WaveState{Number: 1, InProgress: true}) {
		t.Errorf("Wave() = %+v, expected wave 1 in progress", w.Wave())
	}
	if w.EnemyCount() != 7 {
		t.Errorf("EnemyCount() = %d, expected 7", w.EnemyCount())
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", w.Score())
	}

	a := w.Avatar()
	start := w.Level().Start()
	if a.Box.Bottom() != start.Y {
		t.Errorf("avatar bottom = %v, expected start platform top %v", a.Box.Bottom(), start.Y)
	}
	if a.Weapon.Name != "M7" {
		t.Errorf("Weapon = %s, expected M7", a.Weapon.Name)
	}
	if a.Health != 150 {
		t.Errorf("Health = %v, expected 150", a.Health)
	}
}

func TestEnemyIDsRestartEachWave(t *testing.T) {
	w, clock := newTestWorld(42)
	for i, e := range w.enemies {
		if e.ID != EnemyID(i+1) {
			t.Errorf("wave 1 enemy %d ID = %d, expected %d", i, e.ID, i+1)
		}
	}

	for w.EnemyCount() > 0 {
		w.damageEnemy(0, 1e9)
	}
	w.Step(Intent{})
	clock.Advance(3 * time.Second)

	if w.enemies[0].ID != 1 {
		t.Errorf("wave 2 first ID = %d, expected 1", w.enemies[0].ID)
	}
}

func TestWaveClearAndDelay(t *testing.T) {
	w, clock := newTestWorld(7)
	w.flush()

	for w.EnemyCount() > 0 {
		w.damageEnemy(0, 1e9)
	}
	if w.Score() != 70 {
		t.Fatalf("Score() after 7 kills = %d, expected 70", w.Score())
	}

	before := w.Score()
	events := w.Step(Intent{})

	if w.Score()-before != 500 {
		t.Errorf("clear reward = %d, expected 500", w.Score()-before)
	}
	if countEvents[WaveClearedEvent](events) != 1 {
		t.Errorf("WaveClearedEvent count = %d, expected 1", countEvents[WaveClearedEvent](events))
	}
	if w.Wave() != (WaveState{Number: 1, InProgress: false}) {
		t.Errorf("Wave() = %+v, expected wave 1 clearing", w.Wave())
	}

	// Ticks stop between waves
	tick := w.Tick()
	w.Step(Intent{Right: true})
	if w.Tick() != tick {
		t.Errorf("Tick() advanced between waves: %d -> %d", tick, w.Tick())
	}

	clock.Advance(2999 * time.Millisecond)
	if w.Wave().Number != 1 {
		t.Fatalf("wave started early at %v", clock.Now())
	}

	clock.Advance(time.Millisecond)
	if w.Wave() != (WaveState{Number: 2, InProgress: true}) {
		t.Errorf("Wave() = %+v, expected wave 2 in progress", w.Wave())
	}
	if w.EnemyCount() != 9 {
		t.Errorf("EnemyCount() = %d, expected 9", w.EnemyCount())
	}

	events = w.Step(Intent{})
	if countEvents[WaveStartedEvent](events) != 1 {
		t.Errorf("WaveStartedEvent count = %d, expected 1", countEvents[WaveStartedEvent](events))
	}
}

func TestResetInvalidatesPendingWave(t *testing.T) {
	w, clock := newTestWorld(7)
	for w.EnemyCount() > 0 {
		w.damageEnemy(0, 1e9)
	}
	w.Step(Intent{})

	w.Reset(7)
	clock.Advance(5 * time.Second)

	if w.Wave().Number != 1 {
		t.Errorf("Wave().Number = %d, expected 1 after Reset", w.Wave().Number)
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, expected 0 after Reset", w.Score())
	}
}

func TestImmediateSchedulerStartsNextWave(t *testing.T) {
	w := NewWorld(Options{Config: testConfig(), Seed: 3})
	w.flush()
	for w.EnemyCount() > 0 {
		w.damageEnemy(0, 1e9)
	}
	events := w.Step(Intent{})

	if w.Wave() != (WaveState{Number: 2, InProgress: true}) {
		t.Errorf("Wave() = %+v, expected wave 2 in progress", w.Wave())
	}
	if countEvents[WaveStartedEvent](events) != 1 {
		t.Errorf("WaveStartedEvent count = %d, expected 1", countEvents[WaveStartedEvent](events))
	}
}

func TestDefeatOnClearingTickStillPays(t *testing.T) {
	w, clock := newTestWorld(5)
	arena(w)
	w.enemies = nil
	w.avatar.TakeDamage(1e9)

	events := w.Step(Intent{})

	if !w.GameOver() {
		t.Fatal("GameOver() = false, expected true")
	}
	if w.Score() != 500 {
		t.Errorf("Score() = %d, expected the wave 1 clear reward of 500", w.Score())
	}
	if countEvents[WaveClearedEvent](events) != 1 {
		t.Errorf("WaveClearedEvent count = %d, expected 1", countEvents[WaveClearedEvent](events))
	}
	if countEvents[AvatarDefeatedEvent](events) != 1 {
		t.Errorf("AvatarDefeatedEvent count = %d, expected 1", countEvents[AvatarDefeatedEvent](events))
	}
	for _, e := range events {
		if d, ok := e.(AvatarDefeatedEvent); ok && d.Score != 500 {
			t.Errorf("AvatarDefeatedEvent.Score = %d, expected 500", d.Score)
		}
	}

	// The pending wave timer must not revive a finished game
	clock.Advance(5 * time.Second)
	if w.Wave().Number != 1 || w.EnemyCount() != 0 {
		t.Errorf("Wave() = %+v with %d enemies, expected wave 1 to stay over", w.Wave(), w.EnemyCount())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)

	w.Step(Intent{TogglePause: true})
	if !w.Paused() {
		t.Fatal("Paused() = false, expected true")
	}

	pos := w.avatar.Box
	tick := w.Tick()
	for i := 0; i < 10; i++ {
		w.Step(Intent{Left: true, Fire: true, Aim: upRight})
	}

	if w.avatar.Box != pos {
		t.Errorf("avatar moved while paused: %v -> %v", pos, w.avatar.Box)
	}
	if w.Tick() != tick {
		t.Errorf("Tick() = %d, expected %d", w.Tick(), tick)
	}
	if len(w.projectiles) != 0 {
		t.Errorf("projectiles = %d, expected 0 while paused", len(w.projectiles))
	}

	w.Step(Intent{TogglePause: true})
	if w.Paused() {
		t.Error("Paused() = true, expected false after second toggle")
	}
}

func TestPurchasesWhilePaused(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.ledger.Award(1000)
	w.avatar.Health = 60

	w.Step(Intent{TogglePause: true})
	events := w.Step(Intent{BuyHealth: true, ArmorSlot: 2})

	if w.avatar.Health != 110 {
		t.Errorf("Health = %v, expected 110", w.avatar.Health)
	}
	if w.avatar.Armor.Name != "MHS Helmet" {
		t.Errorf("Armor = %q, expected MHS Helmet", w.avatar.Armor.Name)
	}
	if w.Score() != 500 {
		t.Errorf("Score() = %d, expected 500", w.Score())
	}
	if countEvents[PurchaseEvent](events) != 2 {
		t.Errorf("PurchaseEvent count = %d, expected 2", countEvents[PurchaseEvent](events))
	}
}

func TestWeaponSwitch(t *testing.T) {
	w, _ := newTestWorld(1)

	if !w.SwitchWeapon(5) || w.avatar.Weapon.Name != "M250" {
		t.Errorf("SwitchWeapon(5) weapon = %s, expected M250", w.avatar.Weapon.Name)
	}
	if w.SwitchWeapon(0) || w.SwitchWeapon(8) {
		t.Error("SwitchWeapon() should reject slots outside 1..7")
	}
	if w.Snapshot().Avatar.WeaponSlot != 5 {
		t.Errorf("Snapshot().Avatar.WeaponSlot = %d, expected 5", w.Snapshot().Avatar.WeaponSlot)
	}
}

func TestGameOverHaltsWorld(t *testing.T) {
	w, _ := newTestWorld(1)
	arena(w)
	w.hitAvatar(1000)

	events := w.Step(Intent{})
	if !w.GameOver() {
		t.Fatal("GameOver() = false, expected true")
	}
	if countEvents[AvatarDefeatedEvent](events) != 1 {
		t.Errorf("AvatarDefeatedEvent count = %d, expected 1", countEvents[AvatarDefeatedEvent](events))
	}

	tick := w.Tick()
	for i := 0; i < 5; i++ {
		if got := countEvents[AvatarDefeatedEvent](w.Step(Intent{Right: true})); got != 0 {
			t.Errorf("AvatarDefeatedEvent repeated")
		}
	}
	if w.Tick() != tick {
		t.Errorf("Tick() = %d, expected %d after game over", w.Tick(), tick)
	}
	if w.BuyHealth() != PurchaseUnavailable {
		t.Error("BuyHealth() after game over should be unavailable")
	}
}

func TestWorldDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical worlds
	run := func() Snapshot {
		r := NewRunner(Options{Config: testConfig(), Seed: 12345}, 60)
		ap := NewAutopilot()
		for i := 0; i < 3000 && !r.World.GameOver(); i++ {
			r.Tick(ap.Decide(r.World.Snapshot()))
		}
		return r.World.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("Determinism failed: snapshots differ\nrun1: tick=%d score=%d wave=%d\nrun2: tick=%d score=%d wave=%d",
			s1.Tick, s1.Score, s1.Wave, s2.Tick, s2.Score, s2.Wave)
	}
}

func TestAutopilotMakesProgress(t *testing.T) {
	r := NewRunner(Options{Config: testConfig(), Seed: 99}, 60)
	ap := NewAutopilot()
	shots := 0
	for i := 0; i < 600 && !r.World.GameOver(); i++ {
		shots += countEvents[ShotFiredEvent](r.Tick(ap.Decide(r.World.Snapshot())))
	}
	if shots == 0 {
		t.Error("autopilot never fired")
	}
}
