package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ideal-jiwon/gongbu/internal/content"
	"github.com/ideal-jiwon/gongbu/internal/eval"
	"github.com/ideal-jiwon/gongbu/internal/router"
	"github.com/ideal-jiwon/gongbu/internal/screen"
	"github.com/ideal-jiwon/gongbu/internal/screens/home"
	"github.com/ideal-jiwon/gongbu/internal/session"
	"github.com/ideal-jiwon/gongbu/internal/store"
	"github.com/ideal-jiwon/gongbu/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Library  *content.Library
	Config   *eval.Config
	Repo     store.Repo
	Warnings []string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *session.State
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen, resuming
// concept coverage from the latest saved snapshot when one exists.
func newAppModel(opts Options) (AppModel, error) {
	var prior map[string][]string
	if opts.Repo != nil {
		latest, err := opts.Repo.LatestProgress(context.Background())
		if err != nil {
			return AppModel{}, fmt.Errorf("load saved progress: %w", err)
		}
		if latest != nil {
			prior = latest.Coverage
		}
	}

	st := session.NewState(opts.Library, opts.Config, prior, uuid.NewString())
	homeScreen := home.New(st, opts.Repo, opts.Warnings)
	return AppModel{
		router: router.New(homeScreen),
		state:  st,
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.state.Tracker.Stats()
	header := layout.RenderHeader(title, stats.TestedConcepts, stats.TotalConcepts, m.state.Answered, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
