package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Progress is a checkpoint of a study session: the coverage map plus
// session bookkeeping. The coverage map itself is owned by the
// tracker; this is its serialized form.
type Progress struct {
	SessionID         string              `json:"session_id"`
	StartedAt         time.Time           `json:"start_time"`
	Coverage          map[string][]string `json:"concept_coverage"`
	QuestionsAnswered int                 `json:"total_questions_answered"`
	SavedAt           time.Time           `json:"saved_at"`
}

// AnswerRecord is one append-only entry in the answer log.
type AnswerRecord struct {
	SessionID  string
	QuestionID string
	TopicArea  string
	Answer     string
	Score      float64
	Category   string
	CreatedAt  time.Time
}

// Repo is the persistence surface the screens and commands use.
// *Store implements it; tests substitute fakes.
type Repo interface {
	SaveProgress(ctx context.Context, p *Progress) error
	LatestProgress(ctx context.Context) (*Progress, error)
	AppendAnswer(ctx context.Context, rec AnswerRecord) error
	RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error)
	AnswerCount(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

var _ Repo = (*Store)(nil)

// SaveProgress inserts a new progress snapshot and prunes old ones,
// keeping a short history.
func (s *Store) SaveProgress(ctx context.Context, p *Progress) error {
	coverage, err := json.Marshal(p.Coverage)
	if err != nil {
		return fmt.Errorf("marshal coverage: %w", err)
	}
	if p.SavedAt.IsZero() {
		p.SavedAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO progress_snapshots (session_id, started_at, coverage, questions_answered, saved_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.SessionID, p.StartedAt, string(coverage), p.QuestionsAnswered, p.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("insert progress: %w", err)
	}
	return s.pruneProgress(ctx, 20)
}

// LatestProgress returns the most recent snapshot, or nil if none
// has been saved yet.
func (s *Store) LatestProgress(ctx context.Context) (*Progress, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT session_id, started_at, coverage, questions_answered, saved_at
		 FROM progress_snapshots ORDER BY id DESC LIMIT 1`,
	)

	var p Progress
	var coverage string
	err := row.Scan(&p.SessionID, &p.StartedAt, &coverage, &p.QuestionsAnswered, &p.SavedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	if err := json.Unmarshal([]byte(coverage), &p.Coverage); err != nil {
		return nil, fmt.Errorf("unmarshal coverage: %w", err)
	}
	return &p, nil
}

// pruneProgress deletes all but the keep most recent snapshots.
func (s *Store) pruneProgress(ctx context.Context, keep int) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM progress_snapshots WHERE id NOT IN (
			SELECT id FROM progress_snapshots ORDER BY id DESC LIMIT ?
		)`, keep,
	)
	return err
}

// AppendAnswer records one evaluated answer in the answer log.
func (s *Store) AppendAnswer(ctx context.Context, rec AnswerRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answer_events (session_id, question_id, topic_area, answer, score, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.QuestionID, rec.TopicArea, rec.Answer, rec.Score, rec.Category, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}

// RecentAnswers returns the latest answer log entries, newest first.
func (s *Store) RecentAnswers(ctx context.Context, limit int) ([]AnswerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, question_id, topic_area, answer, score, category, created_at
		 FROM answer_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var out []AnswerRecord
	for rows.Next() {
		var rec AnswerRecord
		if err := rows.Scan(&rec.SessionID, &rec.QuestionID, &rec.TopicArea, &rec.Answer, &rec.Score, &rec.Category, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AnswerCount returns the total number of logged answers.
func (s *Store) AnswerCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM answer_events`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}

// Reset deletes all learner data: snapshots and the answer log.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"progress_snapshots", "answer_events"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
