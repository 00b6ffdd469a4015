package game

import "time"

// EndReason says why a run finished.
type EndReason int

const (
	EndCollision EndReason = iota
	EndConceded
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndCollision:
		return "collision"
	case EndConceded:
		return "conceded"
	default:
		return "unknown"
	}
}

// RunResult summarizes a finished run.
type RunResult struct {
	Run       int // 1-based within the process
	Score     int64
	HighScore int64 // High score after this run
	Reason    EndReason
	Theme     string
	Duration  time.Duration
	EndedAt   time.Time
}

// RunRecorder receives every finished run. Failures are logged by the game
// and never interrupt play.
type RunRecorder interface {
	RecordRun(r RunResult) error
}
