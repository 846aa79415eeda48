package sim

// beginWave regenerates the level for the current wave number and spawns
// its population.
func (w *World) beginWave() {
	w.level = w.generator.Generate(w.scaling.PlatformCount(w.wave.Number))
	w.avatar.placeOn(w.level.Start())

	// Transient entities belong to the previous layout
	w.projectiles = w.projectiles[:0]
	w.effects = w.effects[:0]
	w.texts = w.texts[:0]

	enemies, shooters := w.spawnWave()
	w.wave.InProgress = true
	w.emit(WaveStartedEvent{
		Wave:      w.wave.Number,
		Enemies:   enemies,
		Shooters:  shooters,
		Platforms: len(w.level.Platforms),
	})
}

// checkWaveClear awards the clear bonus once the population is gone and
// schedules the next wave.
func (w *World) checkWaveClear() {
	if !w.wave.InProgress || len(w.enemies) > 0 {
		return
	}

	w.wave.InProgress = false
	reward := w.scaling.ClearReward(w.wave.Number)
	w.ledger.Award(reward)
	w.emit(WaveClearedEvent{Wave: w.wave.Number, Reward: reward, Score: w.ledger.Points()})

	epoch := w.epoch
	w.sched.After(w.scaling.Delay(), func() {
		if w.epoch == epoch {
			w.startNextWave()
		}
	})
}

func (w *World) startNextWave() {
	if w.gameOver {
		return
	}
	w.wave.Number++
	w.paused = false
	w.beginWave()
}
