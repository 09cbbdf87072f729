package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textarea for free-text answers. Enter
// inserts a newline; submission is signalled by the owning screen
// (ctrl+d), so the component only manages editing state.
type AnswerInput struct {
	Model textarea.Model
}

// NewAnswerInput creates a multi-line answer box.
func NewAnswerInput(placeholder string, width, height int) AnswerInput {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()

	return AnswerInput{Model: ta}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer box.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the answer text with surrounding whitespace trimmed.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Reset clears the answer box for the next question.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
}

// SetSize resizes the answer box.
func (a *AnswerInput) SetSize(width, height int) {
	a.Model.SetWidth(width)
	a.Model.SetHeight(height)
}
