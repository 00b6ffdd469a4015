// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/flappydive/internal/theme"
)

// Config contains all configuration for the game.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	TickRate   int              `yaml:"tick_rate"`
	World      WorldConfig      `yaml:"world"`
	Sub        SubConfig        `yaml:"sub"`
	Pipes      PipesConfig      `yaml:"pipes"`
	Bubbles    BubblesConfig    `yaml:"bubbles"`
	Background BackgroundConfig `yaml:"background"`
	Themes     []theme.Theme    `yaml:"themes"`
}

// WindowConfig is consumed once at startup.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// WorldConfig defines run-wide parameters.
type WorldConfig struct {
	XSpeed        int `yaml:"x_speed"`         // Scroll speed in pixels per frame
	GameOverTicks int `yaml:"game_over_ticks"` // Frames shown after a crash before reset
}

// SubConfig defines the submarine's spawn point, hitbox and physics.
type SubConfig struct {
	X            int     `yaml:"x"`
	Y            int     `yaml:"y"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	MaxVelocity  float64 `yaml:"max_velocity"`
	BobSpeed     float64 `yaml:"bob_speed"`     // Radians per frame
	BobAmplitude float64 `yaml:"bob_amplitude"` // Pixels
}

// PipesConfig defines obstacle generation.
type PipesConfig struct {
	Width         int `yaml:"width"`
	CapWidth      int `yaml:"cap_width"`
	CapHeight     int `yaml:"cap_height"`
	Margin        int `yaml:"margin"`   // Minimum distance between the gap and the screen edges
	MinHole       int `yaml:"min_hole"` // Inclusive
	MaxHole       int `yaml:"max_hole"` // Exclusive
	MinInterval   int `yaml:"min_interval"`
	MaxInterval   int `yaml:"max_interval"`
	HitboxPadding int `yaml:"hitbox_padding"`
	RemoveAt      int `yaml:"remove_at"`
}

// BubblesConfig defines the bubble pool.
type BubblesConfig struct {
	Max           int     `yaml:"max"`
	SpawnOverscan int     `yaml:"spawn_overscan"` // Bubbles may spawn this far right of the screen
	MinVelocity   float64 `yaml:"min_velocity"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	PopFloor      int     `yaml:"pop_floor"` // Lowest allowed pop height
}

// BackgroundConfig defines the scenery.
type BackgroundConfig struct {
	Highlights    int `yaml:"highlights"`
	HighlightSize int `yaml:"highlight_size"`
	InitialDelay  int `yaml:"initial_delay"`
	MinInterval   int `yaml:"min_interval"`
	MaxInterval   int `yaml:"max_interval"`
	RemoveAt      int `yaml:"remove_at"`
}

// AllThemes returns the built-in palettes followed by the configured ones.
func (c Config) AllThemes() []theme.Theme {
	themes := theme.Builtin()
	return append(themes, c.Themes...)
}

// WindowTitle returns the configured window title, or the game's name when
// none is set.
func (c Config) WindowTitle() string {
	if t := strings.TrimSpace(c.Window.Title); t != "" {
		return t
	}
	return "FlappyDive"
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.TickRate > 0 && c.TickRate <= 240, "tick_rate must be in 1..240, got %d", c.TickRate)
	check(c.World.XSpeed > 0, "world.x_speed must be positive, got %d", c.World.XSpeed)
	check(c.World.GameOverTicks >= 0, "world.game_over_ticks must not be negative")
	check(c.Sub.Width > 0 && c.Sub.Height > 0, "sub size must be positive")
	check(c.Sub.MaxVelocity > 0, "sub.max_velocity must be positive")
	check(c.Pipes.Width > 0, "pipes.width must be positive")
	check(c.Pipes.MinHole > 0 && c.Pipes.MinHole < c.Pipes.MaxHole, "pipes hole range [%d, %d) is empty", c.Pipes.MinHole, c.Pipes.MaxHole)
	check(c.Pipes.MinInterval > 0 && c.Pipes.MinInterval < c.Pipes.MaxInterval, "pipes interval range [%d, %d) is empty", c.Pipes.MinInterval, c.Pipes.MaxInterval)
	check(c.Bubbles.Max >= 0, "bubbles.max must not be negative")
	check(c.Bubbles.MinVelocity < c.Bubbles.MaxVelocity && c.Bubbles.MaxVelocity < 0, "bubbles velocity range must be negative and non-empty")
	check(c.Background.Highlights >= 0, "background.highlights must not be negative")
	check(c.Background.InitialDelay > 0, "background.initial_delay must be positive")
	check(c.Background.MinInterval > 0 && c.Background.MinInterval < c.Background.MaxInterval, "background interval range is empty")
	for i, th := range c.Themes {
		check(th.Name != "", "themes[%d] needs a name", i)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
