package game

import (
	"math"

	"github.com/vovakirdan/flappydive/internal/config"
	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Sub is the player's submarine.
//
// Y is accumulated as a float so small velocities still move the sub; the
// hitbox and the sprite use the truncated value.
type Sub struct {
	cfg config.SubConfig

	initialX, initialY float64
	x, y               float64
	angle              float64 // Bob phase in pregame, π once sunk
	bob                float64 // Pregame vertical offset
	velocity           float64

	tint core.RGB
}

// NewSub creates a sub at its configured spawn point.
func NewSub(cfg config.SubConfig, t theme.Theme) *Sub {
	s := &Sub{
		cfg:      cfg,
		initialX: float64(cfg.X),
		initialY: float64(cfg.Y),
		tint:     t.Sub,
	}
	s.Reset()
	return s
}

func (s *Sub) Name() string { return "sub" }

// Update applies the physics of the current phase.
func (s *Sub) Update(st *State) {
	switch st.Phase() {
	case PhasePregame:
		s.angle = math.Mod(s.angle+s.cfg.BobSpeed, 2*math.Pi)
		s.bob = math.Sin(s.angle) * s.cfg.BobAmplitude
	case PhaseGameOver:
		s.angle = math.Pi
		s.bob = 0
		s.fall(st.WindowHeight)
	case PhasePlaying:
		s.angle = 0
		s.bob = 0
		s.fall(st.WindowHeight)
	}
}

// fall applies one tick of gravity, stopping softly at the floor.
func (s *Sub) fall(h int) {
	s.velocity = core.ClampF(s.velocity+s.cfg.Gravity, -s.cfg.MaxVelocity, s.cfg.MaxVelocity)
	s.y += s.velocity
	if floor := float64(h); s.y > floor {
		s.y = floor
		s.velocity = 0
	}
}

// Jump replaces the current velocity with the jump impulse. Gravity is still
// applied by the next Update.
func (s *Sub) Jump() {
	s.velocity = s.cfg.JumpStrength
}

// Reset puts the sub back at its spawn point, at rest.
func (s *Sub) Reset() {
	s.x = s.initialX
	s.y = s.initialY
	s.angle = 0
	s.bob = 0
	s.velocity = 0
}

func (s *Sub) SwitchTheme(t theme.Theme) {
	s.tint = t.Sub
}

// Position returns the on-screen top-left corner, bobbing included.
func (s *Sub) Position() (int, int) {
	return int(s.x), int(s.y + s.bob)
}

// BoundingBox returns the sub's hitbox at its render position.
func (s *Sub) BoundingBox() core.Rect {
	x, y := s.Position()
	return core.NewRect(x, y, s.cfg.Width, s.cfg.Height)
}

// Render draws the sub tilted by its velocity, or upside down once sunk.
func (s *Sub) Render(st *State, r core.Renderer) error {
	opts := core.ImageOptions{Tint: s.tint}
	if st.Phase() == PhaseGameOver {
		opts.FlipV = true
	} else {
		opts.Rotation = s.velocity
	}
	return r.DrawImage(core.AssetSub, s.BoundingBox(), opts)
}

func (s *Sub) X() float64 { return s.x }
func (s *Sub) Y() float64 { return s.y }
func (s *Sub) Angle() float64 { return s.angle }
func (s *Sub) Velocity() float64 { return s.velocity }
