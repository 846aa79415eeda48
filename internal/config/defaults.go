package config

import (
	_ "embed"
)

//go:embed defaults/skirmish.yaml
var defaultSkirmishYAML []byte

// DefaultSkirmishConfig returns the default skirmish configuration.
// It must stay in sync with defaults/skirmish.yaml.
func DefaultSkirmishConfig() SkirmishConfig {
	return SkirmishConfig{
		World: WorldConfig{
			Width:        1000,
			Height:       600,
			BoundsMargin: 10,
		},
		Physics: PhysicsConfig{
			Gravity:   1.0,
			JumpSpeed: 17,
		},
		Avatar: AvatarConfig{
			Width:         20,
			Height:        40,
			MaxHealth:     150,
			BaseSpeed:     5,
			AirControl:    0.5,
			AirNudge:      0.5,
			AirReverse:    0.3,
			AirDamping:    0.98,
			DefaultWeapon: 2,
		},
		Enemies: EnemiesConfig{
			Width:      30,
			Height:     30,
			AggroRange: 300,
			DeadZone:   50,
			Walker: WalkerConfig{
				Health:        20,
				Speed:         1.5,
				ContactDamage: 5,
				ContactChance: 0.05,
			},
			Shooter: ShooterConfig{
				Health:             40,
				Speed:              1,
				Range:              250,
				CooldownMultiplier: 2,
				Weapon:             4,
			},
		},
		Combat: CombatConfig{
			ProjectileRadius:     3,
			PelletSpread:         0.7,
			ExplosionLifetime:    10,
			FloatingTextLifetime: 60,
			FloatingTextRise:     1,
			KillReward:           10,
		},
		Level: LevelConfig{
			GroundHeight:     50,
			StartWidth:       250,
			StartHeight:      20,
			StartElevation:   150,
			MinPlatformW:     100,
			MaxPlatformW:     200,
			MinPlatformH:     15,
			MaxPlatformH:     25,
			HorizontalReach:  100,
			DropAllowance:    50,
			RiseFactor:       0.8,
			MinTop:           50,
			SideMargin:       10,
			SafeZonePadX:     100,
			SafeZonePadY:     50,
			MaxAttempts:      50,
			MaxBranchRetries: 200,
		},
		Waves: WavesConfig{
			BaseEnemies:          5,
			EnemiesPerWave:       2,
			BaseShooterChance:    0.2,
			ShooterChancePerWave: 0.1,
			BasePlatforms:        4,
			PlatformsPerWave:     2,
			ClearReward:          500,
			DelayMS:              3000,
			SpawnY:               100,
			SpawnMarginX:         75,
			SpawnEdgeInset:       50,
			SafeDistance:         400,
			SpawnAttempts:        50,
		},
		Economy: EconomyConfig{
			HealthCost:    200,
			HealthRestore: 50,
		},
	}
}
