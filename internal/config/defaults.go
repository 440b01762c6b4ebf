package config

import (
	_ "embed"
)

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultDinoConfig returns the built-in runner configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Display: DinoDisplay{
			Width:        128,
			Height:       64,
			GroundHeight: 50,
			Brightness:   1.0,
		},
		Physics: DinoPhysics{
			JumpDurationMs: 500,
			JumpHeight:     20,
			RunSpeed:       2,
		},
		Player: DinoPlayer{
			X:      16,
			Width:  8,
			Height: 8,
		},
		Obstacles: DinoObstacles{
			Width:       8,
			Height:      8,
			SpawnChance: 0.1,
			CooldownMs:  300,
		},
		Cycle: DinoCycle{
			Interval: 1000,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultDinoYAML
}
