package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadSkirmish loads the skirmish configuration.
// Search order: customPath -> ~/.skirmish/configs/skirmish.yaml -> ./configs/skirmish.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadSkirmish(customPath string) (SkirmishConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkirmishConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSkirmishConfig(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skirmish.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "skirmish.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSkirmishYAML)
	if err != nil {
		return DefaultSkirmishConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (SkirmishConfig, error) {
	cfg := DefaultSkirmishConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the invariants the engine relies on.
func Validate(cfg SkirmishConfig) error {
	switch {
	case cfg.World.Width <= 0 || cfg.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case cfg.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case cfg.Physics.JumpSpeed <= 0:
		return fmt.Errorf("%w: jump_speed must be positive", ErrInvalid)
	case cfg.Avatar.MaxHealth <= 0:
		return fmt.Errorf("%w: avatar max_health must be positive", ErrInvalid)
	case cfg.Avatar.Width <= 0 || cfg.Avatar.Height <= 0:
		return fmt.Errorf("%w: avatar size must be positive", ErrInvalid)
	case cfg.Enemies.Walker.ContactChance < 0 || cfg.Enemies.Walker.ContactChance > 1:
		return fmt.Errorf("%w: contact_chance must be within [0, 1]", ErrInvalid)
	case cfg.Level.MinPlatformW > cfg.Level.MaxPlatformW:
		return fmt.Errorf("%w: min_platform_w exceeds max_platform_w", ErrInvalid)
	case cfg.Level.MinPlatformH > cfg.Level.MaxPlatformH:
		return fmt.Errorf("%w: min_platform_h exceeds max_platform_h", ErrInvalid)
	case cfg.Level.MaxAttempts <= 0 || cfg.Waves.SpawnAttempts <= 0:
		return fmt.Errorf("%w: attempt counts must be positive", ErrInvalid)
	case cfg.Waves.DelayMS < 0:
		return fmt.Errorf("%w: delay_ms must not be negative", ErrInvalid)
	case cfg.Economy.HealthCost < 0:
		return fmt.Errorf("%w: health_cost must not be negative", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skirmish", "configs", filename)
}
