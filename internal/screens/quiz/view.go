package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ideal-jiwon/gongbu/internal/eval"
	"github.com/ideal-jiwon/gongbu/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseFeedback:
		return q.renderFeedback(width)
	case phaseDone:
		return q.renderDone(width)
	}
	return q.renderQuestion(width)
}

func (q *QuizScreen) renderQuestion(width int) string {
	if q.current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking a question...")
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + q.current.TopicArea)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  difficulty: %s", q.state.Answered+1, q.current.Difficulty))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	textWidth := min(width-8, 70)

	if q.current.Scenario != "" {
		scenario := lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.current.Scenario)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scenario))
		b.WriteString("\n\n")
	}

	question := lipgloss.NewStyle().
		Width(textWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.current.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.input.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Ctrl+D submits your answer"))

	if q.saveErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("save failed: " + q.saveErr))
	}

	return b.String()
}

func (q *QuizScreen) renderFeedback(width int) string {
	fb := q.feedback
	if fb == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	headline, style := categoryHeadline(fb.Category)
	b.WriteString(style.
		Width(width).
		Align(lipgloss.Center).
		Render(headline))
	b.WriteString("\n\n")

	card := theme.Card.
		Width(min(width-8, 74)).
		Render(fb.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key for the next question..."))

	return b.String()
}

func (q *QuizScreen) renderDone(width int) string {
	sum := q.state.Summarize()

	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("수고했어요! No more questions."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Answered %d questions · coverage %.1f%%",
			sum.Answered, sum.Stats.CoveragePercent)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to return to the menu..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this study session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your coverage will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func categoryHeadline(cat eval.Category) (string, lipgloss.Style) {
	switch cat {
	case eval.CategoryCorrect:
		return "정답입니다!", theme.Correct
	case eval.CategoryPartiallyCorrect:
		return "부분 정답이에요", theme.Partial
	default:
		return "다시 복습해 볼까요?", theme.Incorrect
	}
}
