// Package session holds the runtime state of an interactive study
// session: what has been asked, what to ask next, and the wiring
// between the coverage tracker and the answer evaluator.
package session

import (
	"time"

	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/coverage"
	"github.com/ideal-jiwon/gongbu/internal/eval"
	"github.com/ideal-jiwon/gongbu/internal/store"
)

// State tracks one study session. It is single-goroutine state, owned
// by the quiz screen.
type State struct {
	// Library is the loaded study data.
	Library *content.Library

	// Tracker owns the concept coverage map.
	Tracker *coverage.Tracker

	// Evaluator scores answers and builds feedback.
	Evaluator *eval.Evaluator

	// SessionID is the UUID for this session.
	SessionID string

	// StartedAt is when the session began.
	StartedAt time.Time

	// TopicFilter restricts question selection to one topic area
	// when non-empty.
	TopicFilter string

	// Answered is the count of evaluated answers this session.
	Answered int

	// LastFeedback is the most recent evaluation result.
	LastFeedback *eval.Feedback

	// asked holds question ids already served this session.
	asked map[string]bool
}

// NewState creates a session over the given library, resuming from a
// prior coverage map when one exists.
func NewState(lib *content.Library, cfg *eval.Config, prior map[string][]string, sessionID string) *State {
	return &State{
		Library:   lib,
		Tracker:   coverage.NewTracker(lib.Concepts, prior),
		Evaluator: eval.NewEvaluator(cfg, lib.Concepts),
		SessionID: sessionID,
		StartedAt: time.Now(),
		asked:     make(map[string]bool),
	}
}

// NextQuestion picks the next question and marks it as asked. The
// precedence order is deliberate: a question covering the concept the
// tracker selected (and matching the topic filter), then any unseen
// question in the filtered topic, then any unseen question at all.
// Returns nil when no suitable question remains.
func (s *State) NextQuestion() *content.Question {
	if s.Library == nil || len(s.Library.Questions) == 0 {
		return nil
	}

	concept := s.Tracker.SelectNext(coverage.StrategyUntestedFirst, s.TopicFilter)
	if concept == nil {
		return nil
	}

	for i := range s.Library.Questions {
		q := &s.Library.Questions[i]
		if s.asked[q.ID] || !questionCovers(q, concept.ID) {
			continue
		}
		if s.TopicFilter == "" || q.TopicArea == s.TopicFilter {
			s.asked[q.ID] = true
			return q
		}
	}

	if s.TopicFilter != "" {
		for i := range s.Library.Questions {
			q := &s.Library.Questions[i]
			if !s.asked[q.ID] && q.TopicArea == s.TopicFilter {
				s.asked[q.ID] = true
				return q
			}
		}
		return nil
	}

	for i := range s.Library.Questions {
		q := &s.Library.Questions[i]
		if !s.asked[q.ID] {
			s.asked[q.ID] = true
			return q
		}
	}
	return nil
}

// Submit evaluates the answer and marks every concept the question
// tests as covered. Evaluation itself is side-effect free; this is
// the single place where coverage advances.
func (s *State) Submit(q *content.Question, answer string) *eval.Feedback {
	fb := s.Evaluator.Evaluate(q, answer)
	for _, cid := range q.ConceptIDs {
		s.Tracker.MarkCovered(cid, q.ID)
	}
	s.Answered++
	s.LastFeedback = fb
	return fb
}

// Progress builds a persistable checkpoint of this session.
func (s *State) Progress() *store.Progress {
	return &store.Progress{
		SessionID:         s.SessionID,
		StartedAt:         s.StartedAt,
		Coverage:          s.Tracker.CoverageMap(),
		QuestionsAnswered: s.Answered,
	}
}

func questionCovers(q *content.Question, conceptID string) bool {
	for _, cid := range q.ConceptIDs {
		if cid == conceptID {
			return true
		}
	}
	return false
}
