package sim

import "github.com/vovakirdan/tui-skirmish/internal/core"

// spawnWave replaces the enemy population for the current wave.
// Positions closer than the safe distance to the avatar are resampled; after
// the attempt budget the enemy falls back to alternating world edges.
func (w *World) spawnWave() (enemies, shooters int) {
	c := w.cfg.Waves
	count := w.scaling.EnemyCount(w.wave.Number)
	chance := w.scaling.ShooterChance(w.wave.Number)
	avatarPos := w.avatar.Pos()

	w.enemies = w.enemies[:0]
	w.nextID = 0

	for i := 0; i < count; i++ {
		y := c.SpawnY
		x, ok := 0.0, false
		for attempt := 0; attempt < c.SpawnAttempts && !ok; attempt++ {
			x = w.rng.Float64()*(w.cfg.World.Width-2*c.SpawnMarginX) + c.SpawnMarginX
			ok = core.Distance(avatarPos, core.Vec{X: x, Y: y}) >= c.SafeDistance
		}
		if !ok {
			if i%2 == 0 {
				x = c.SpawnEdgeInset
			} else {
				x = w.cfg.World.Width - c.SpawnEdgeInset
			}
		}

		w.nextID++
		if w.rng.Float64() < chance {
			w.enemies = append(w.enemies, newShooter(w.nextID, x, y, w.cfg.Enemies))
			shooters++
		} else {
			w.enemies = append(w.enemies, newWalker(w.nextID, x, y, w.cfg.Enemies))
		}
	}
	return len(w.enemies), shooters
}
