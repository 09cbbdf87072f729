// Package progress implements the coverage statistics screen.
package progress

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/session"
	"github.com/ideal-jiwon/gongbu/internal/store"
	"github.com/ideal-jiwon/gongbu/internal/ui/components"
	"github.com/ideal-jiwon/gongbu/internal/ui/theme"
)

// ProgressScreen shows concept coverage overall and per topic.
type ProgressScreen struct {
	state       *session.State
	repo        store.Repo
	totalAnswer int
	loadErr     string
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(state *session.State, repo store.Repo) *ProgressScreen {
	return &ProgressScreen{state: state, repo: repo}
}

type answerCountMsg struct {
	count int
	err   error
}

func (p *ProgressScreen) Init() tea.Cmd {
	if p.repo == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := p.repo.AnswerCount(context.Background())
		return answerCountMsg{count: n, err: err}
	}
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerCountMsg:
		if msg.err != nil {
			p.loadErr = msg.err.Error()
		} else {
			p.totalAnswer = msg.count
		}
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	stats := p.state.Tracker.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Study Progress"))
	b.WriteString("\n\n")

	barWidth := min(width-12, 60)

	overall := components.NewProgressBar(
		fmt.Sprintf("Overall %3d/%d", stats.TestedConcepts, stats.TotalConcepts),
		stats.CoveragePercent/100, true, barWidth)
	overall.Graded = true
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overall.View()))
	b.WriteString("\n\n")

	topicNames := make([]string, 0, len(stats.ByTopic))
	for topic := range stats.ByTopic {
		topicNames = append(topicNames, topic)
	}
	sort.Strings(topicNames)

	var section strings.Builder
	for _, topic := range topicNames {
		bar := components.NewProgressBar(padTopic(topic, 32), stats.ByTopic[topic]/100, true, barWidth)
		bar.Graded = true
		section.WriteString(bar.View())
		section.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, section.String()))

	if len(stats.UntestedTopics) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warn).
			Render("Untested topics: " + strings.Join(stats.UntestedTopics, ", ")))
		b.WriteString("\n")
	}

	if stats.Complete() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("모든 개념을 학습했어요! Every concept has been tested."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answers this session: %d · all time: %d", p.state.Answered, p.totalAnswer)))

	if p.loadErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("history unavailable: " + p.loadErr))
	}

	return b.String()
}

func padTopic(topic string, width int) string {
	r := []rune(topic)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return topic + strings.Repeat(" ", width-len(r))
}
