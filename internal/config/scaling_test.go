package config

import (
	"testing"
	"time"
)

func TestWaveScaling(t *testing.T) {
	s := NewWaveScaling(DefaultSkirmishConfig().Waves)

	tests := []struct {
		wave      int
		enemies   int
		platforms int
		reward    int
	}{
		{1, 7, 6, 500},
		{2, 9, 8, 1000},
		{5, 15, 14, 2500},
	}

	for _, tt := range tests {
		if got := s.EnemyCount(tt.wave); got != tt.enemies {
			t.Errorf("EnemyCount(%d) = %d, expected %d", tt.wave, got, tt.enemies)
		}
		if got := s.PlatformCount(tt.wave); got != tt.platforms {
			t.Errorf("PlatformCount(%d) = %d, expected %d", tt.wave, got, tt.platforms)
		}
		if got := s.ClearReward(tt.wave); got != tt.reward {
			t.Errorf("ClearReward(%d) = %d, expected %d", tt.wave, got, tt.reward)
		}
	}
}

func TestShooterChanceClamped(t *testing.T) {
	s := NewWaveScaling(DefaultSkirmishConfig().Waves)

	prev := 0.0
	for wave := 1; wave <= 20; wave++ {
		c := s.ShooterChance(wave)
		if c < prev {
			t.Errorf("ShooterChance(%d) = %v decreased from %v", wave, c, prev)
		}
		if c < 0 || c > 1 {
			t.Errorf("ShooterChance(%d) = %v, expected within [0, 1]", wave, c)
		}
		prev = c
	}
	if got := s.ShooterChance(20); got != 1 {
		t.Errorf("ShooterChance(20) = %v, expected 1", got)
	}
}

func TestWaveDelay(t *testing.T) {
	s := NewWaveScaling(DefaultSkirmishConfig().Waves)
	if got := s.Delay(); got != 3*time.Second {
		t.Errorf("Delay() = %v, expected 3s", got)
	}
}
