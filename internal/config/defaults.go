package config

import (
	_ "embed"
)

//go:embed defaults/flappydive.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/flappydive.yaml and is the fallback if the embedded
// file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "FlappyDive",
			Width:  800,
			Height: 600,
		},
		TickRate: 60,
		World: WorldConfig{
			XSpeed:        3,
			GameOverTicks: 45,
		},
		Sub: SubConfig{
			X:            100,
			Y:            100,
			Width:        50,
			Height:       45,
			Gravity:      0.2,
			JumpStrength: -5.0,
			MaxVelocity:  10.0,
			BobSpeed:     0.04,
			BobAmplitude: 10,
		},
		Pipes: PipesConfig{
			Width:         50,
			CapWidth:      64,
			CapHeight:     20,
			Margin:        50,
			MinHole:       150,
			MaxHole:       250,
			MinInterval:   75,
			MaxInterval:   200,
			HitboxPadding: 5,
			RemoveAt:      -50,
		},
		Bubbles: BubblesConfig{
			Max:           15,
			SpawnOverscan: 300,
			MinVelocity:   -3.0,
			MaxVelocity:   -0.5,
			PopFloor:      -20,
		},
		Background: BackgroundConfig{
			Highlights:    100,
			HighlightSize: 2,
			InitialDelay:  100,
			MinInterval:   50,
			MaxInterval:   300,
			RemoveAt:      -100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
