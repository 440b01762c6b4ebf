// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DinoConfig contains all configuration for the runner game.
type DinoConfig struct {
	Display   DinoDisplay   `yaml:"display"`
	Physics   DinoPhysics   `yaml:"physics"`
	Player    DinoPlayer    `yaml:"player"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	Cycle     DinoCycle     `yaml:"cycle"`
}

// DinoDisplay describes the monochrome display the track is drawn on.
type DinoDisplay struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	GroundHeight int     `yaml:"ground_height"` // Sprites rest on this y; the ground line is one below
	Brightness   float64 `yaml:"brightness"`    // 0..1, sent as contrast*255
}

// DinoPhysics defines the jump arc and scroll speed.
type DinoPhysics struct {
	JumpDurationMs int `yaml:"jump_duration_ms"`
	JumpHeight     int `yaml:"jump_height"`
	RunSpeed       int `yaml:"run_speed"` // Units per tick
}

// DinoPlayer defines the player sprite box.
type DinoPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DinoObstacles defines obstacle size and spawn scheduling.
type DinoObstacles struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability of NOT spawning on a roll
	CooldownMs  int     `yaml:"cooldown_ms"`
}

// DinoCycle defines the day/night palette cycle.
type DinoCycle struct {
	Interval int `yaml:"interval"` // Distance between palette toggles
}

// Contrast returns the display contrast byte for the configured brightness.
func (c DinoConfig) Contrast() uint8 {
	return uint8(c.Display.Brightness * 255)
}

// Validate checks the config for values the game cannot run with.
func (c DinoConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"display.width", c.Display.Width},
		{"display.height", c.Display.Height},
		{"physics.jump_duration_ms", c.Physics.JumpDurationMs},
		{"physics.jump_height", c.Physics.JumpHeight},
		{"physics.run_speed", c.Physics.RunSpeed},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"cycle.interval", c.Cycle.Interval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Obstacles.CooldownMs < 0 {
		return fmt.Errorf("%w: obstacles.cooldown_ms must not be negative, got %d", ErrInvalidConfig, c.Obstacles.CooldownMs)
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		return fmt.Errorf("%w: obstacles.spawn_chance must be within [0, 1], got %g", ErrInvalidConfig, c.Obstacles.SpawnChance)
	}
	if c.Display.Brightness < 0 || c.Display.Brightness > 1 {
		return fmt.Errorf("%w: display.brightness must be within [0, 1], got %g", ErrInvalidConfig, c.Display.Brightness)
	}
	if c.Display.GroundHeight < c.Player.Height+c.Physics.JumpHeight || c.Display.GroundHeight >= c.Display.Height {
		return fmt.Errorf("%w: display.ground_height %d leaves no room for the jump arc on a %d pixel display",
			ErrInvalidConfig, c.Display.GroundHeight, c.Display.Height)
	}
	if c.Player.X < 0 || c.Player.X+c.Player.Width > c.Display.Width {
		return fmt.Errorf("%w: player.x %d is off the display", ErrInvalidConfig, c.Player.X)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Empty means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}
