package game

import (
	"fmt"

	"github.com/vovakirdan/flappydive/internal/core"
	"github.com/vovakirdan/flappydive/internal/theme"
)

// Approximate glyph width in world pixels, used to center text.
const glyphWidth = 8

// Score draws the HUD while a run is on and the pregame banner otherwise.
// It reads everything from the state and keeps nothing itself.
type Score struct{}

func NewScore() *Score { return &Score{} }

func (s *Score) Name() string { return "score" }
func (s *Score) Update(*State) {}
func (s *Score) SwitchTheme(theme.Theme) {}
func (s *Score) Reset() {}

func (s *Score) Render(st *State, r core.Renderer) error {
	text := st.Palette().Text
	if st.Phase() == PhasePregame {
		msg := PregameMessage(st)
		w := len(msg) * glyphWidth
		dst := core.NewRect((st.WindowWidth-w)/2, st.WindowHeight/2-15, w, 30)
		return r.DrawText(msg, text, dst)
	}
	return r.DrawText(ScoreLine(st.FC, st.HighScore), text, core.NewRect(20, 10, 300, 30))
}

// ScoreLine formats the in-run HUD.
func ScoreLine(score, high int64) string {
	return fmt.Sprintf("Score: %06d   Hi-Score: %06d", score, high)
}

// PregameMessage returns the banner shown between runs.
func PregameMessage(st *State) string {
	if st.RunCount == 0 {
		return "Press <space> to begin"
	}
	return fmt.Sprintf("You sunk! Score: %d. Press <space> to dive again", st.LastScore)
}
