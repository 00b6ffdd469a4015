// Package theme holds the color palettes and the cyclic switcher that picks
// the active one.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/flappydive/internal/core"
)

// ErrNoThemes is returned when a switcher is built from an empty list.
var ErrNoThemes = errors.New("theme: at least one theme is required")

// Theme is an immutable named palette applied across all actors.
type Theme struct {
	Name          string   `yaml:"name"`
	Sand          core.RGB `yaml:"sand"`           // Sea floor
	SandHighlight core.RGB `yaml:"sand_highlight"` // Speckles in the sand
	Water         core.RGB `yaml:"water"`
	Pipes         core.RGB `yaml:"pipes"`
	Bubbles       core.RGB `yaml:"bubbles"`
	Text          core.RGB `yaml:"text"`
	Sub           core.RGB `yaml:"sub"`
	FaunaColor1   core.RGB `yaml:"fauna_color_1"`
	FaunaColor2   core.RGB `yaml:"fauna_color_2"`
	FaunaColor3   core.RGB `yaml:"fauna_color_3"`
	FaunaColor4   core.RGB `yaml:"fauna_color_4"`
}

// Fauna returns the four creature colors in order.
func (t Theme) Fauna() [4]core.RGB {
	return [4]core.RGB{t.FaunaColor1, t.FaunaColor2, t.FaunaColor3, t.FaunaColor4}
}

var (
	// Coral is the default bright palette.
	Coral = Theme{
		Name:          "coral",
		Sand:          core.NewRGB(244, 214, 164),
		SandHighlight: core.NewRGB(178, 147, 114),
		Water:         core.NewRGB(74, 179, 219),
		Pipes:         core.NewRGB(111, 191, 115),
		Bubbles:       core.NewRGB(136, 207, 241),
		Text:          core.NewRGB(116, 100, 76),
		Sub:           core.NewRGB(128, 128, 255),
		FaunaColor1:   core.NewRGB(242, 140, 140),
		FaunaColor2:   core.NewRGB(42, 123, 79),
		FaunaColor3:   core.NewRGB(255, 111, 97),
		FaunaColor4:   core.NewRGB(139, 111, 169),
	}

	// Grayscale is Coral with every color desaturated.
	Grayscale = Theme{
		Name:          "grayscale",
		Sand:          core.NewRGB(213, 213, 213),
		SandHighlight: core.NewRGB(155, 155, 155),
		Water:         core.NewRGB(142, 142, 142),
		Pipes:         core.NewRGB(161, 161, 161),
		Bubbles:       core.NewRGB(196, 196, 196),
		Text:          core.NewRGB(104, 104, 104),
		Sub:           core.NewRGB(128, 128, 128),
		FaunaColor1:   core.NewRGB(161, 161, 161),
		FaunaColor2:   core.NewRGB(93, 93, 93),
		FaunaColor3:   core.NewRGB(144, 144, 144),
		FaunaColor4:   core.NewRGB(116, 116, 116),
	}

	// Lagoon uses warm sand and light cyan water.
	Lagoon = Theme{
		Name:          "lagoon",
		Sand:          core.NewRGB(245, 203, 123),
		SandHighlight: core.NewRGB(214, 163, 92),
		Water:         core.NewRGB(93, 188, 210),
		Pipes:         core.NewRGB(129, 199, 132),
		Bubbles:       core.NewRGB(171, 222, 239),
		Text:          core.NewRGB(89, 80, 66),
		Sub:           core.NewRGB(128, 128, 255),
		FaunaColor1:   core.NewRGB(243, 156, 18),
		FaunaColor2:   core.NewRGB(39, 174, 96),
		FaunaColor3:   core.NewRGB(231, 76, 60),
		FaunaColor4:   core.NewRGB(155, 89, 182),
	}

	// Reef uses beige sand, sky blue water and teal pipes.
	Reef = Theme{
		Name:          "reef",
		Sand:          core.NewRGB(232, 198, 135),
		SandHighlight: core.NewRGB(192, 157, 104),
		Water:         core.NewRGB(89, 168, 245),
		Pipes:         core.NewRGB(84, 153, 124),
		Bubbles:       core.NewRGB(156, 209, 247),
		Text:          core.NewRGB(70, 63, 55),
		Sub:           core.NewRGB(128, 128, 255),
		FaunaColor1:   core.NewRGB(255, 87, 51),
		FaunaColor2:   core.NewRGB(46, 204, 113),
		FaunaColor3:   core.NewRGB(240, 147, 43),
		FaunaColor4:   core.NewRGB(128, 90, 213),
	}
)

// Builtin returns the built-in palettes in cycling order.
func Builtin() []Theme {
	return []Theme{Coral, Grayscale, Lagoon, Reef}
}

// Switcher holds an ordered, non-empty list of themes and a cursor.
type Switcher struct {
	themes  []Theme
	current int
}

// NewSwitcher creates a switcher positioned on the first theme.
func NewSwitcher(themes []Theme) (*Switcher, error) {
	if len(themes) == 0 {
		return nil, ErrNoThemes
	}
	owned := make([]Theme, len(themes))
	copy(owned, themes)
	return &Switcher{themes: owned}, nil
}

// Next advances the cursor cyclically and returns the new current theme.
func (s *Switcher) Next() Theme {
	s.current = (s.current + 1) % len(s.themes)
	return s.themes[s.current]
}

// Current returns the active theme.
func (s *Switcher) Current() Theme {
	return s.themes[s.current]
}

// Index returns the cursor position.
func (s *Switcher) Index() int {
	return s.current
}

// Len returns the number of themes.
func (s *Switcher) Len() int {
	return len(s.themes)
}

// Names lists the theme names in order.
func (s *Switcher) Names() []string {
	names := make([]string, len(s.themes))
	for i, t := range s.themes {
		names[i] = t.Name
	}
	return names
}

// Select moves the cursor to the theme with the given name (case-insensitive).
func (s *Switcher) Select(name string) error {
	for i, t := range s.themes {
		if strings.EqualFold(t.Name, name) {
			s.current = i
			return nil
		}
	}
	return fmt.Errorf("theme: unknown theme %q (have %s)", name, strings.Join(s.Names(), ", "))
}
