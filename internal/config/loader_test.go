package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded SkirmishConfig
	if err := yaml.Unmarshal(defaultSkirmishYAML, &embedded); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if embedded != DefaultSkirmishConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", embedded, DefaultSkirmishConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  gravity: 0.5\nwaves:\n  delay_ms: 100\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Waves.DelayMS != 100 {
		t.Errorf("DelayMS = %d, expected 100", cfg.Waves.DelayMS)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpSpeed != 17 {
		t.Errorf("JumpSpeed = %v, expected 17", cfg.Physics.JumpSpeed)
	}
	if cfg.Avatar.MaxHealth != 150 {
		t.Errorf("MaxHealth = %v, expected 150", cfg.Avatar.MaxHealth)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "world:\n  width: 0\n"},
		{"negative gravity", "physics:\n  gravity: -1\n"},
		{"chance above one", "enemies:\n  walker:\n    contact_chance: 1.5\n"},
		{"inverted platform width", "level:\n  min_platform_w: 300\n  max_platform_w: 100\n"},
		{"no attempts", "level:\n  max_attempts: 0\n"},
		{"negative delay", "waves:\n  delay_ms: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("world: [unclosed"))
	if err == nil {
		t.Fatal("Parse() should fail on malformed yaml")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax errors should not be reported as ErrInvalid")
	}
}

func TestLoadSkirmishCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("economy:\n  health_cost: 50\n"), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadSkirmish(path)
	if err != nil {
		t.Fatalf("LoadSkirmish() error = %v", err)
	}
	if cfg.Economy.HealthCost != 50 {
		t.Errorf("HealthCost = %d, expected 50", cfg.Economy.HealthCost)
	}
}

func TestLoadSkirmishMissingCustomPath(t *testing.T) {
	cfg, err := LoadSkirmish(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadSkirmish() should fail for a missing custom path")
	}
	if cfg != DefaultSkirmishConfig() {
		t.Error("LoadSkirmish() should return defaults alongside the error")
	}
}

func TestMaxJumpRise(t *testing.T) {
	p := PhysicsConfig{Gravity: 1, JumpSpeed: 17}
	if got := p.MaxJumpRise(); got != 144.5 {
		t.Errorf("MaxJumpRise() = %v, expected 144.5", got)
	}
	if got := (PhysicsConfig{}).MaxJumpRise(); got != 0 {
		t.Errorf("MaxJumpRise() with zero gravity = %v, expected 0", got)
	}
}
