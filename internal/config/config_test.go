package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultDinoConfig() {
		t.Errorf("embedded defaults differ from DefaultDinoConfig():\n%+v\n%+v", cfg, DefaultDinoConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultDinoConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c := DefaultDinoConfig().Contrast(); c != 255 {
		t.Errorf("Contrast() = %d, expected 255", c)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DinoConfig)
	}{
		{"zero run speed", func(c *DinoConfig) { c.Physics.RunSpeed = 0 }},
		{"zero jump duration", func(c *DinoConfig) { c.Physics.JumpDurationMs = 0 }},
		{"negative cooldown", func(c *DinoConfig) { c.Obstacles.CooldownMs = -1 }},
		{"spawn chance above one", func(c *DinoConfig) { c.Obstacles.SpawnChance = 1.5 }},
		{"brightness below zero", func(c *DinoConfig) { c.Display.Brightness = -0.1 }},
		{"ground below display", func(c *DinoConfig) { c.Display.GroundHeight = 64 }},
		{"ground too high for arc", func(c *DinoConfig) { c.Display.GroundHeight = 20 }},
		{"player off display", func(c *DinoConfig) { c.Player.X = 125 }},
		{"zero cycle interval", func(c *DinoConfig) { c.Cycle.Interval = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDinoConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("physics:\n  run_speed: 3\nobstacles:\n  spawn_chance: 0.4\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Physics.RunSpeed != 3 {
		t.Errorf("RunSpeed = %d, expected 3", cfg.Physics.RunSpeed)
	}
	if cfg.Obstacles.SpawnChance != 0.4 {
		t.Errorf("SpawnChance = %g, expected 0.4", cfg.Obstacles.SpawnChance)
	}
	if cfg.Physics.JumpHeight != 20 {
		t.Errorf("unset JumpHeight should keep default 20, got %d", cfg.Physics.JumpHeight)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("physics: [not, a, map]")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
	if _, err := Parse([]byte("physics:\n  run_speed: -2\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse negative speed = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadDinoCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dino.yaml")
	if err := os.WriteFile(path, []byte("cycle:\n  interval: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDino(path)
	if err != nil {
		t.Fatalf("LoadDino failed: %v", err)
	}
	if cfg.Cycle.Interval != 500 {
		t.Errorf("Cycle.Interval = %d, expected 500", cfg.Cycle.Interval)
	}

	if _, err := LoadDino(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadDino should fail for a missing custom path")
	}
}

func TestLoadDinoWithoutPathIsValid(t *testing.T) {
	cfg, err := LoadDino("")
	if err != nil {
		t.Fatalf("LoadDino(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("LoadDino(\"\") returned invalid config: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultDinoConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg != DefaultDinoConfig() {
		t.Error("marshalled defaults did not parse back to defaults")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(nightmare) = %v, expected ErrInvalidConfig", err)
	}

	cfg := DefaultDinoConfig()
	cfg.Obstacles.SpawnChance = 0.33
	ApplyDinoPreset(&cfg, DifficultyFixed)
	if cfg.Obstacles.SpawnChance != 0.33 {
		t.Error("fixed preset should keep loaded spawn chance")
	}

	ApplyDinoPreset(&cfg, DifficultyEasy)
	if cfg.Obstacles.SpawnChance <= 0.33 {
		t.Error("easy preset should skip more spawn rolls")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("easy preset produced invalid config: %v", err)
	}

	hard := DefaultDinoConfig()
	ApplyDinoPreset(&hard, DifficultyHard)
	if hard.Obstacles.CooldownMs >= DefaultDinoConfig().Obstacles.CooldownMs {
		t.Error("hard preset should shorten the cooldown")
	}
}
