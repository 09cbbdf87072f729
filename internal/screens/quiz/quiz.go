// Package quiz implements the interactive study session screen.
package quiz

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/eval"
	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/screens/topics"
	"github.com/ideal-jiwon/gongbu/internal/session"
	"github.com/ideal-jiwon/gongbu/internal/store"
	"github.com/ideal-jiwon/gongbu/internal/ui/components"
	"github.com/ideal-jiwon/gongbu/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseQuitConfirm
	phaseDone
)

// QuizScreen runs the question/answer/feedback loop.
type QuizScreen struct {
	state     *session.State
	repo      store.Repo
	input     components.AnswerInput
	current   *content.Question
	feedback  *eval.Feedback
	phase     phase
	prevPhase phase
	saveErr   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen bound to the shared session state.
func New(state *session.State, repo store.Repo) *QuizScreen {
	return &QuizScreen{
		state: state,
		repo:  repo,
		input: components.NewAnswerInput("Type your answer here...", 70, 6),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.advance()
	return q.input.Init()
}

func (q *QuizScreen) Title() string {
	if q.state.TopicFilter != "" {
		return "Study · " + q.state.TopicFilter
	}
	return "Study"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseDone:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back to menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Submit"},
			{Key: "Ctrl+K", Description: "Skip"},
			{Key: "Ctrl+T", Description: "Topic"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerSavedMsg:
		if msg.err != nil {
			q.saveErr = msg.err.Error()
		}
		return q, nil

	case progressSavedMsg:
		if msg.err != nil {
			q.saveErr = msg.err.Error()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.phase == phaseQuestion {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseQuitConfirm:
		switch msg.String() {
		case "y", "Y":
			return q, tea.Batch(
				q.saveProgress(),
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		case "n", "N", "esc":
			q.phase = q.prevPhase
		}
		return q, nil

	case phaseFeedback:
		if msg.String() == "esc" {
			q.prevPhase = q.phase
			q.phase = phaseQuitConfirm
			return q, nil
		}
		q.advance()
		return q, nil

	case phaseDone:
		return q, tea.Batch(
			q.saveProgress(),
			func() tea.Msg { return router.PopScreenMsg{} },
		)
	}

	// phaseQuestion
	switch msg.String() {
	case "esc":
		q.prevPhase = q.phase
		q.phase = phaseQuitConfirm
		return q, nil

	case "ctrl+d":
		answer := q.input.Value()
		if answer == "" || q.current == nil {
			return q, nil
		}
		q.feedback = q.state.Submit(q.current, answer)
		q.phase = phaseFeedback
		return q, tea.Batch(q.saveAnswer(q.feedback), q.saveProgress())

	case "ctrl+k":
		q.advance()
		return q, nil

	case "ctrl+t":
		picker := topics.New(q.state.Library.Topics(), q.state.TopicFilter, func(topic string) tea.Cmd {
			q.state.TopicFilter = topic
			return nil
		})
		return q, func() tea.Msg { return router.PushScreenMsg{Screen: picker} }
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// advance pulls the next question or ends the session.
func (q *QuizScreen) advance() {
	q.feedback = nil
	q.input.Reset()
	q.current = q.state.NextQuestion()
	if q.current == nil {
		q.phase = phaseDone
		return
	}
	q.phase = phaseQuestion
}

func (q *QuizScreen) saveAnswer(fb *eval.Feedback) tea.Cmd {
	if q.repo == nil || q.current == nil {
		return nil
	}
	rec := store.AnswerRecord{
		SessionID:  q.state.SessionID,
		QuestionID: fb.QuestionID,
		TopicArea:  q.current.TopicArea,
		Answer:     fb.StudentAnswer,
		Score:      fb.Score,
		Category:   string(fb.Category),
	}
	return func() tea.Msg {
		return answerSavedMsg{err: q.repo.AppendAnswer(context.Background(), rec)}
	}
}

func (q *QuizScreen) saveProgress() tea.Cmd {
	if q.repo == nil {
		return nil
	}
	p := q.state.Progress()
	return func() tea.Msg {
		return progressSavedMsg{err: q.repo.SaveProgress(context.Background(), p)}
	}
}
