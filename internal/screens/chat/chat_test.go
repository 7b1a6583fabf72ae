package chat

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/p2tutor/internal/difficulty"
	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/tutor"
)

type memStore struct {
	stats progress.Stats
	saves int
}

func (m *memStore) Load() (progress.Stats, error) { return m.stats.Clone(), nil }
func (m *memStore) Save(s progress.Stats) error {
	m.stats = s.Clone()
	m.saves++
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testChatScreen(t *testing.T) (*ChatScreen, *memStore) {
	t.Helper()
	st := &memStore{stats: progress.Defaults()}
	s := New(func(p tutor.Presenter) *tutor.Tutor {
		return tutor.New(tutor.Options{
			Store:     st,
			Presenter: p,
			Rand:      problemgen.NewRand(11),
			Now:       func() time.Time { return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC) },
			SessionID: "chat-test",
		})
	})
	return s, st
}

func lastText(s *ChatScreen) string {
	entries := s.Transcript().Entries()
	return entries[len(entries)-1].Text
}

func TestNewGreets(t *testing.T) {
	s, _ := testChatScreen(t)

	require.Equal(t, 1, s.Transcript().Len())
	entry := s.Transcript().Entries()[0]
	assert.Contains(t, entry.Text, "Muraho")
	assert.Equal(t, "[09:30] 🧑‍🏫 Mwarimu: ", entry.Prefix)
	assert.Equal(t, focusTopics, s.focus)
}

func TestEnterOnTopicPresentsProblem(t *testing.T) {
	s, st := testChatScreen(t)

	s.Update(specialKey(tea.KeyEnter))

	p, ok := s.Tutor().Current()
	require.True(t, ok)
	assert.Equal(t, problemgen.TopicNumeration, p.Topic)
	assert.Contains(t, lastText(s), p.Prompt)
	assert.Equal(t, focusAnswer, s.focus)
	assert.True(t, st.stats.TopicsSeen.Has("Numeration 0-999"))
}

func TestGridNavigationPicksTopic(t *testing.T) {
	s, _ := testChatScreen(t)

	// Second row, second column of a two-column grid is the sixth topic.
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyEnter))

	p, ok := s.Tutor().Current()
	require.True(t, ok)
	assert.Equal(t, problemgen.Topics()[5].ID, p.Topic)
}

func TestHintKey(t *testing.T) {
	s, _ := testChatScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	before := s.Tutor().HintsRemaining()

	s.Update(ctrlKey('g'))

	assert.True(t, strings.HasPrefix(lastText(s), "💡 Hint 1:"))
	assert.Equal(t, before-1, s.Tutor().HintsRemaining())
}

func TestHintWithoutProblem(t *testing.T) {
	s, _ := testChatScreen(t)

	s.Update(ctrlKey('g'))

	assert.Equal(t, "Please select a problem type first!", lastText(s))
}

func TestSubmitCorrectAnswer(t *testing.T) {
	s, st := testChatScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	p, _ := s.Tutor().Current()

	s.input.Model.SetValue(p.Answer.String())
	s.Update(specialKey(tea.KeyEnter))

	_, live := s.Tutor().Current()
	assert.False(t, live)
	assert.Equal(t, 1, st.stats.Attempted)
	assert.Equal(t, 1, st.stats.Correct)
	assert.Equal(t, focusTopics, s.focus)
	assert.Empty(t, s.input.Value())
	assert.Contains(t, lastText(s), "Ready for another problem?")
}

func TestTypedAnswerIsGraded(t *testing.T) {
	s, st := testChatScreen(t)
	s.Update(specialKey(tea.KeyEnter))

	for _, r := range "1000" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyEnter))

	// No numeration answer reaches 1000.
	assert.Equal(t, 1, st.stats.Attempted)
	assert.Equal(t, 0, st.stats.Correct)
}

func TestEmptySubmitKeepsProblem(t *testing.T) {
	s, st := testChatScreen(t)
	s.Update(specialKey(tea.KeyEnter))

	s.Update(specialKey(tea.KeyEnter))

	_, live := s.Tutor().Current()
	assert.True(t, live)
	assert.Equal(t, 0, st.stats.Attempted)
	assert.Equal(t, "Please enter your answer!", lastText(s))
	assert.Equal(t, focusAnswer, s.focus)
}

func TestDifficultyCycles(t *testing.T) {
	s, st := testChatScreen(t)

	s.Update(ctrlKey('d'))
	assert.Equal(t, difficulty.Medium, s.Tutor().Difficulty())
	assert.Equal(t, difficulty.Medium, st.stats.Difficulty)

	s.Update(ctrlKey('d'))
	s.Update(ctrlKey('d'))
	assert.Equal(t, difficulty.Easy, s.Tutor().Difficulty())
}

func TestTabTogglesFocus(t *testing.T) {
	s, _ := testChatScreen(t)

	s.Update(specialKey(tea.KeyTab))
	assert.Equal(t, focusAnswer, s.focus)
	s.Update(specialKey(tea.KeyTab))
	assert.Equal(t, focusTopics, s.focus)
}

func TestStatusAndView(t *testing.T) {
	s, _ := testChatScreen(t)

	assert.Equal(t, "Problems Solved: 0 | Accuracy: 0.0% | Level: Easy", s.Status())
	for _, w := range []int{80, 140} {
		view := s.View(w, 30)
		assert.Contains(t, view, "Choose a topic")
		assert.Contains(t, view, "Level: Easy")
	}
}
