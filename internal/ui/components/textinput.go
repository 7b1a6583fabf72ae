package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// AnswerCharLimit caps the length of a typed answer.
const AnswerCharLimit = 40

// AnswerInput wraps bubbles/textinput as the chat answer box.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates an answer box with the given placeholder.
func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = AnswerCharLimit
	ti.Prompt = "✎ "
	return AnswerInput{Model: ti}
}

// Focus gives the box keyboard focus.
func (a *AnswerInput) Focus() tea.Cmd {
	return a.Model.Focus()
}

// Blur removes keyboard focus.
func (a *AnswerInput) Blur() {
	a.Model.Blur()
}

// Focused reports whether the box has keyboard focus.
func (a AnswerInput) Focused() bool {
	return a.Model.Focused()
}

// Update handles messages.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// Value returns the trimmed input.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

// Clear empties the box.
func (a *AnswerInput) Clear() {
	a.Model.SetValue("")
}

// View renders the input inside a border that lights up when focused.
func (a AnswerInput) View(width int) string {
	style := theme.Blurred
	if a.Focused() {
		style = theme.Focused
	}
	return style.Width(max(width-2, 10)).Render(a.Model.View())
}

// Label renders a dim caption for the box.
func Label(text string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
}
