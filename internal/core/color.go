package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque 24-bit color. Palettes and every draw call use it.
type RGB struct {
	R, G, B uint8
}

// NewRGB creates a color from its components.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts for true color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to an opaque image/color value.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ParseRGB parses "#rrggbb" or "rrggbb".
func ParseRGB(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// UnmarshalYAML accepts either a hex string ("#f4d6a4") or a
// three-element sequence ([244, 214, 164]).
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseRGB(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var parts []int
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("line %d: color needs 3 components, got %d", node.Line, len(parts))
		}
		for _, p := range parts {
			if p < 0 || p > 255 {
				return fmt.Errorf("line %d: color component %d out of range", node.Line, p)
			}
		}
		*c = RGB{R: uint8(parts[0]), G: uint8(parts[1]), B: uint8(parts[2])}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported color value", node.Line)
	}
}

// Scale multiplies every component by f, clamped to [0, 1].
func (c RGB) Scale(f float64) RGB {
	f = ClampF(f, 0, 1)
	return RGB{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}
