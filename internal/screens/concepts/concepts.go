// Package concepts implements the untested concept browser.
package concepts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/session"
	"github.com/ideal-jiwon/gongbu/internal/ui/layout"
	"github.com/ideal-jiwon/gongbu/internal/ui/theme"
)

// ConceptsScreen lists concepts that have not been tested yet, with a
// scrollable cursor showing each concept's definition.
type ConceptsScreen struct {
	state    *session.State
	untested []content.Concept
	cursor   int
	offset   int
}

var _ screen.Screen = (*ConceptsScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptsScreen)(nil)

// New creates a new ConceptsScreen.
func New(state *session.State) *ConceptsScreen {
	return &ConceptsScreen{
		state:    state,
		untested: state.Tracker.Untested(),
	}
}

func (c *ConceptsScreen) Init() tea.Cmd {
	return nil
}

func (c *ConceptsScreen) Title() string {
	return "Concepts"
}

func (c *ConceptsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConceptsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "esc":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.untested)-1 {
			c.cursor++
		}
	}
	return c, nil
}

func (c *ConceptsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Untested Concepts"))
	b.WriteString("\n")

	total := len(c.state.Library.Concepts)
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%d of %d concepts still to cover", len(c.untested), total)))
	b.WriteString("\n\n")

	if len(c.untested) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Nothing left, every concept has been tested."))
		return b.String()
	}

	visible := height - 10
	if visible < 3 {
		visible = 3
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+visible {
		c.offset = c.cursor - visible + 1
	}

	var list strings.Builder
	end := min(c.offset+visible, len(c.untested))
	for i := c.offset; i < end; i++ {
		con := c.untested[i]
		line := fmt.Sprintf("%s  (%s)", con.Name, con.TopicArea)
		if i == c.cursor {
			list.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			list.WriteString(theme.Unselected.Render("  " + line))
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	sel := c.untested[c.cursor]
	def := theme.Card.
		Width(min(width-8, 70)).
		Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(sel.Definition))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, def))

	return b.String()
}
