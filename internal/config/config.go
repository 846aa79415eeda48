// Package config provides YAML-based game configuration loading and the
// built-in wave scaling formula.
package config

// SkirmishConfig contains every tuning constant of the skirmish game.
type SkirmishConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Avatar  AvatarConfig  `yaml:"avatar"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Combat  CombatConfig  `yaml:"combat"`
	Level   LevelConfig   `yaml:"level"`
	Waves   WavesConfig   `yaml:"waves"`
	Economy EconomyConfig `yaml:"economy"`
}

// WorldConfig defines the play field in world units.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Projectiles beyond this margin are discarded
}

// PhysicsConfig defines gravity and the jump impulse shared by all bodies.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity every tick
	JumpSpeed float64 `yaml:"jump_speed"` // Magnitude of the upward launch velocity
}

// MaxJumpRise returns the highest reachable rise of a jump, v²/2g.
func (p PhysicsConfig) MaxJumpRise() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return p.JumpSpeed * p.JumpSpeed / (2 * p.Gravity)
}

// AvatarConfig defines the player avatar.
type AvatarConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxHealth     float64 `yaml:"max_health"`
	BaseSpeed     float64 `yaml:"base_speed"`
	AirControl    float64 `yaml:"air_control"`    // Fraction of speed available while airborne
	AirNudge      float64 `yaml:"air_nudge"`      // Per-tick push toward target when airborne and same direction
	AirReverse    float64 `yaml:"air_reverse"`    // Fraction of target added per tick when reversing airborne
	AirDamping    float64 `yaml:"air_damping"`    // Velocity multiplier per tick with no intent airborne
	DefaultWeapon int     `yaml:"default_weapon"` // 1-based catalog slot
}

// EnemiesConfig defines both enemy variants.
type EnemiesConfig struct {
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	AggroRange float64       `yaml:"aggro_range"`
	DeadZone   float64       `yaml:"dead_zone"` // Horizontal distance under which enemies stop stepping
	Walker     WalkerConfig  `yaml:"walker"`
	Shooter    ShooterConfig `yaml:"shooter"`
}

// WalkerConfig defines the melee variant.
type WalkerConfig struct {
	Health        float64 `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ContactDamage float64 `yaml:"contact_damage"`
	ContactChance float64 `yaml:"contact_chance"` // Per-tick probability of dealing contact damage while overlapping
}

// ShooterConfig defines the ranged variant.
type ShooterConfig struct {
	Health             float64 `yaml:"health"`
	Speed              float64 `yaml:"speed"`
	Range              float64 `yaml:"range"`               // Aggro and firing range
	CooldownMultiplier int     `yaml:"cooldown_multiplier"` // Fire interval multiple of the weapon's rate
	Weapon             int     `yaml:"weapon"`              // 1-based catalog slot
}

// CombatConfig defines projectile and effect parameters.
type CombatConfig struct {
	ProjectileRadius     float64 `yaml:"projectile_radius"`
	PelletSpread         float64 `yaml:"pellet_spread"` // Full cone width in radians
	ExplosionLifetime    int     `yaml:"explosion_lifetime"`
	FloatingTextLifetime int     `yaml:"floating_text_lifetime"`
	FloatingTextRise     float64 `yaml:"floating_text_rise"`
	KillReward           int     `yaml:"kill_reward"`
}

// LevelConfig defines the procedural platform generator.
type LevelConfig struct {
	GroundHeight     float64 `yaml:"ground_height"`
	StartWidth       float64 `yaml:"start_width"`
	StartHeight      float64 `yaml:"start_height"`
	StartElevation   float64 `yaml:"start_elevation"` // Distance from the world bottom to the start platform top
	MinPlatformW     float64 `yaml:"min_platform_w"`
	MaxPlatformW     float64 `yaml:"max_platform_w"`
	MinPlatformH     float64 `yaml:"min_platform_h"`
	MaxPlatformH     float64 `yaml:"max_platform_h"`
	HorizontalReach  float64 `yaml:"horizontal_reach"` // Max gap beside the reference platform
	DropAllowance    float64 `yaml:"drop_allowance"`   // Max distance below the reference platform
	RiseFactor       float64 `yaml:"rise_factor"`      // Fraction of the physical jump rise allowed
	MinTop           float64 `yaml:"min_top"`
	SideMargin       float64 `yaml:"side_margin"`
	SafeZonePadX     float64 `yaml:"safe_zone_pad_x"`
	SafeZonePadY     float64 `yaml:"safe_zone_pad_y"`
	MaxAttempts      int     `yaml:"max_attempts"`
	MaxBranchRetries int     `yaml:"max_branch_retries"`
}

// WavesConfig defines the wave director and spawn placement.
type WavesConfig struct {
	BaseEnemies          int     `yaml:"base_enemies"`
	EnemiesPerWave       int     `yaml:"enemies_per_wave"`
	BaseShooterChance    float64 `yaml:"base_shooter_chance"`
	ShooterChancePerWave float64 `yaml:"shooter_chance_per_wave"`
	BasePlatforms        int     `yaml:"base_platforms"`
	PlatformsPerWave     int     `yaml:"platforms_per_wave"`
	ClearReward          int     `yaml:"clear_reward"` // Multiplied by the wave number
	DelayMS              int     `yaml:"delay_ms"`
	SpawnY               float64 `yaml:"spawn_y"`
	SpawnMarginX         float64 `yaml:"spawn_margin_x"`
	SpawnEdgeInset       float64 `yaml:"spawn_edge_inset"`
	SafeDistance         float64 `yaml:"safe_distance"`
	SpawnAttempts        int     `yaml:"spawn_attempts"`
}

// EconomyConfig defines shop prices.
type EconomyConfig struct {
	HealthCost    int     `yaml:"health_cost"`
	HealthRestore float64 `yaml:"health_restore"`
}
