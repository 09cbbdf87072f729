// Package home implements the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/screens/concepts"
	"github.com/ideal-jiwon/gongbu/internal/screens/progress"
	"github.com/ideal-jiwon/gongbu/internal/screens/quiz"
	"github.com/ideal-jiwon/gongbu/internal/session"
	"github.com/ideal-jiwon/gongbu/internal/store"
	"github.com/ideal-jiwon/gongbu/internal/ui/components"
	"github.com/ideal-jiwon/gongbu/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	state    *session.State
	warnings []string
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(state *session.State, repo store.Repo, warnings []string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START STUDY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(state, repo)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(state, repo)}
			}
		}},
		{Label: "CONCEPTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: concepts.New(state)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		state:    state,
		warnings: warnings,
		menu:     components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("공부 · Gongbu"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("personal study drill"))
	b.WriteString("\n\n")

	stats := h.state.Tracker.Stats()
	summary := fmt.Sprintf("%d concepts · %d questions · %.1f%% covered",
		stats.TotalConcepts, len(h.state.Library.Questions), stats.CoveragePercent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	if len(h.warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warn).
			Render(fmt.Sprintf("%d data warning(s), run `gongbu validate` for details", len(h.warnings))))
	}

	return b.String()
}
