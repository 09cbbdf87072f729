// Package topics implements the topic filter picker.
package topics

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/ui/components"
	"github.com/ideal-jiwon/gongbu/internal/ui/theme"
)

// TopicsScreen lets the user restrict question selection to one topic
// area. Choosing "All topics" clears the filter. OnSelect receives the
// chosen topic ("" for all) and the screen pops itself.
type TopicsScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates a topic picker over the given topic list.
func New(topicList []string, current string, onSelect func(topic string) tea.Cmd) *TopicsScreen {
	items := make([]components.MenuItem, 0, len(topicList)+1)

	items = append(items, components.MenuItem{
		Label: pickerLabel("All topics", current == ""),
		Action: func() tea.Cmd {
			return tea.Batch(
				onSelect(""),
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		},
	})

	for _, topic := range topicList {
		topic := topic
		items = append(items, components.MenuItem{
			Label: pickerLabel(topic, topic == current),
			Action: func() tea.Cmd {
				return tea.Batch(
					onSelect(topic),
					func() tea.Msg { return router.PopScreenMsg{} },
				)
			},
		})
	}

	return &TopicsScreen{menu: components.NewMenu(items)}
}

func pickerLabel(name string, active bool) string {
	if active {
		return name + " ●"
	}
	return name
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Title() string {
	return "Topics"
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TopicsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Pick a topic"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("questions will stay inside this topic area"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.menu.View()))

	return b.String()
}
