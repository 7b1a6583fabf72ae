// Package chat is the practice screen: a topic picker, the conversation
// with the tutor and an answer box.
package chat

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/screen"
	"github.com/abhisek/p2tutor/internal/tutor"
	"github.com/abhisek/p2tutor/internal/ui/components"
	"github.com/abhisek/p2tutor/internal/ui/layout"
	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// topicColumns is the width of the topic grid.
const topicColumns = 2

// scrollStep is how many lines PgUp/PgDown move the transcript.
const scrollStep = 5

// sideBySideWidth is the terminal width from which topics and chat are
// laid out next to each other.
const sideBySideWidth = 110

type focusArea int

const (
	focusTopics focusArea = iota
	focusAnswer
)

// Builder creates the tutor that drives a screen, sending its messages to p.
type Builder func(p tutor.Presenter) *tutor.Tutor

// ChatScreen hosts one practice session.
type ChatScreen struct {
	tutor      *tutor.Tutor
	topics     []problemgen.TopicInfo
	menu       components.Menu
	input      components.AnswerInput
	transcript *components.Transcript
	focus      focusArea
}

var (
	_ screen.Screen          = (*ChatScreen)(nil)
	_ screen.KeyHintProvider = (*ChatScreen)(nil)
	_ screen.StatusProvider  = (*ChatScreen)(nil)
)

// New creates the practice screen and greets the learner.
func New(build Builder) *ChatScreen {
	s := &ChatScreen{
		topics:     problemgen.Topics(),
		input:      components.NewAnswerInput("Type your answer here…"),
		transcript: &components.Transcript{},
	}

	items := make([]components.MenuItem, len(s.topics))
	for i, t := range s.topics {
		items[i] = components.MenuItem{Label: t.Icon + " " + t.Label}
	}
	s.menu = components.NewGridMenu(items, topicColumns)

	s.tutor = build(tutor.PresenterFunc(s.display))
	s.tutor.Welcome()
	return s
}

// display appends a tutor message to the transcript.
func (s *ChatScreen) display(m tutor.Message) {
	style := theme.TutorPrefix
	if m.Role == tutor.RoleStudent {
		style = theme.StudentPrefix
	}
	s.transcript.Append(components.TranscriptEntry{
		Prefix:      m.Prefix(),
		PrefixStyle: style,
		Text:        m.Text,
	})
}

// Tutor returns the session behind the screen.
func (s *ChatScreen) Tutor() *tutor.Tutor {
	return s.tutor
}

// Transcript returns the conversation so far.
func (s *ChatScreen) Transcript() *components.Transcript {
	return s.transcript
}

func (s *ChatScreen) Init() tea.Cmd {
	return nil
}

func (s *ChatScreen) Title() string {
	return "Practice"
}

// Status returns the learner's stats bar.
func (s *ChatScreen) Status() string {
	return s.tutor.StatusLine()
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.focus == focusAnswer {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "shift+tab":
		return s, s.toggleFocus()
	case "ctrl+g":
		s.tutor.RequestHint()
		return s, nil
	case "ctrl+d":
		s.tutor.SetDifficulty(s.tutor.Difficulty().Next())
		return s, nil
	case "pgup":
		s.transcript.ScrollUp(scrollStep)
		return s, nil
	case "pgdown":
		s.transcript.ScrollDown(scrollStep)
		return s, nil
	case "enter":
		if s.focus == focusTopics {
			return s, s.chooseTopic()
		}
		return s, s.submit()
	}

	var cmd tea.Cmd
	if s.focus == focusTopics {
		s.menu, cmd = s.menu.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *ChatScreen) toggleFocus() tea.Cmd {
	if s.focus == focusTopics {
		return s.focusAnswer()
	}
	s.focusTopics()
	return nil
}

func (s *ChatScreen) focusAnswer() tea.Cmd {
	s.focus = focusAnswer
	return s.input.Focus()
}

func (s *ChatScreen) focusTopics() {
	s.focus = focusTopics
	s.input.Blur()
}

func (s *ChatScreen) chooseTopic() tea.Cmd {
	if s.menu.Selected < 0 || s.menu.Selected >= len(s.topics) {
		return nil
	}
	if err := s.tutor.ChooseTopic(s.topics[s.menu.Selected].ID); err != nil {
		return nil
	}
	s.input.Clear()
	return s.focusAnswer()
}

// submit grades the typed answer. Once the problem is retired the focus
// returns to the topic picker.
func (s *ChatScreen) submit() tea.Cmd {
	outcome, err := s.tutor.Submit(s.input.Value())
	switch {
	case errors.Is(err, tutor.ErrNoActiveProblem):
		s.focusTopics()
		return nil
	case err != nil:
		return nil
	}
	s.input.Clear()
	if outcome.Counted() {
		s.focusTopics()
	}
	return nil
}

func (s *ChatScreen) View(width, height int) string {
	if width >= sideBySideWidth {
		return s.viewWide(width, height)
	}
	return s.viewNarrow(width, height)
}

func (s *ChatScreen) viewWide(width, height int) string {
	leftWidth := 44
	rightWidth := width - leftWidth - 1

	left := s.renderTopics(leftWidth)
	inputBlock := s.renderInput(rightWidth)
	chatHeight := max(height-lipgloss.Height(inputBlock)-1, 1)
	right := lipgloss.JoinVertical(lipgloss.Left,
		s.renderTranscript(rightWidth, chatHeight),
		inputBlock,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (s *ChatScreen) viewNarrow(width, height int) string {
	topics := s.renderTopics(width)
	inputBlock := s.renderInput(width)
	chatHeight := max(height-lipgloss.Height(topics)-lipgloss.Height(inputBlock)-1, 1)
	return lipgloss.JoinVertical(lipgloss.Left,
		topics,
		s.renderTranscript(width, chatHeight),
		inputBlock,
	)
}

func (s *ChatScreen) renderTopics(width int) string {
	active := s.focus == focusTopics
	style := theme.Blurred
	if active {
		style = theme.Focused
	}
	title := components.Label("📚 Choose a topic")
	return style.Width(width - 2).Render(title + "\n" + s.menu.View(width-4, active))
}

func (s *ChatScreen) renderTranscript(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(0, 1).
		Render(s.transcript.View(width-2, height))
}

func (s *ChatScreen) renderInput(width int) string {
	caption := fmt.Sprintf("Level: %s", s.tutor.Difficulty())
	if _, ok := s.tutor.Current(); ok {
		caption += fmt.Sprintf("  ·  Hints left: %d", s.tutor.HintsRemaining())
	}
	return components.Label(caption) + "\n" + s.input.View(width)
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch"}}
	if s.focus == focusTopics {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "New problem"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Check"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+G", Description: "Hint"},
		layout.KeyHint{Key: "Ctrl+D", Description: "Level"},
		layout.KeyHint{Key: "PgUp/PgDn", Description: "Scroll"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}
