package session

import (
	"time"

	"github.com/ideal-jiwon/gongbu/internal/coverage"
)

// Summary is the end-of-session report shown when a study session
// finishes or the user quits.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Answered  int
	Stats     coverage.Stats
}

// Summarize snapshots the current session into a Summary.
func (s *State) Summarize() Summary {
	return Summary{
		SessionID: s.SessionID,
		Duration:  time.Since(s.StartedAt),
		Answered:  s.Answered,
		Stats:     s.Tracker.Stats(),
	}
}
