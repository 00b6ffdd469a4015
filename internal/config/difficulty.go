package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty resolves a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// ScrollSpeedForPreset returns the world scroll speed for a preset.
func ScrollSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 3
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps whatever speed the config file chose.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.World.XSpeed = ScrollSpeedForPreset(preset)
		cfg.Pipes.MinHole += 25
		cfg.Pipes.MaxHole += 25
	case DifficultyHard:
		cfg.World.XSpeed = ScrollSpeedForPreset(preset)
		cfg.Pipes.MinInterval = max(cfg.Pipes.MinInterval-15, 1)
	}
}
