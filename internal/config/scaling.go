package config

import "time"

// WaveScaling computes wave-dependent parameters. Every value grows
// monotonically with the wave number.
type WaveScaling struct {
	cfg WavesConfig
}

// NewWaveScaling creates a scaling formula from the waves config.
func NewWaveScaling(cfg WavesConfig) *WaveScaling {
	return &WaveScaling{cfg: cfg}
}

// EnemyCount returns the population spawned for the given wave.
func (s *WaveScaling) EnemyCount(wave int) int {
	return s.cfg.BaseEnemies + wave*s.cfg.EnemiesPerWave
}

// ShooterChance returns the probability that a spawned enemy is a Shooter.
func (s *WaveScaling) ShooterChance(wave int) float64 {
	return clampF(s.cfg.BaseShooterChance+float64(wave)*s.cfg.ShooterChancePerWave, 0.0, 1.0)
}

// PlatformCount returns how many connected platforms the generator targets.
func (s *WaveScaling) PlatformCount(wave int) int {
	return s.cfg.BasePlatforms + wave*s.cfg.PlatformsPerWave
}

// ClearReward returns the points awarded when the wave is cleared.
func (s *WaveScaling) ClearReward(wave int) int {
	return s.cfg.ClearReward * wave
}

// Delay returns the pause between a clear and the next wave.
func (s *WaveScaling) Delay() time.Duration {
	return time.Duration(s.cfg.DelayMS) * time.Millisecond
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
