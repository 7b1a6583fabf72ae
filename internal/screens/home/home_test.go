package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/p2tutor/internal/difficulty"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/router"
	"github.com/abhisek/p2tutor/internal/screen"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.name }
func (s *stubScreen) Title() string                          { return s.name }

type memStore struct{ stats progress.Stats }

func (m *memStore) Load() (progress.Stats, error) { return m.stats.Clone(), nil }
func (m *memStore) Save(s progress.Stats) error   { m.stats = s.Clone(); return nil }

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestStartPracticePushesTutor(t *testing.T) {
	h := New(Options{
		Practice: func() screen.Screen { return &stubScreen{name: "tutor"} },
		Stats:    func() screen.Screen { return &stubScreen{name: "stats"} },
	})

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "tutor", push.Screen.Title())
}

func TestMyProgressPushesStats(t *testing.T) {
	h := New(Options{
		Practice: func() screen.Screen { return &stubScreen{name: "tutor"} },
		Stats:    func() screen.Screen { return &stubScreen{name: "stats"} },
	})

	h.Update(down())
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "stats", push.Screen.Title())
}

func TestResumeReloadsStats(t *testing.T) {
	store := &memStore{stats: progress.Defaults()}
	h := New(Options{Progress: store})
	assert.Equal(t, 0, h.Stats().Attempted)

	s := progress.Defaults()
	s.Attempted, s.Correct = 10, 9
	s.Difficulty = difficulty.Hard
	require.NoError(t, store.Save(s))

	h.Resume()
	assert.Equal(t, 10, h.Stats().Attempted)
	assert.Contains(t, h.View(120, 40), "90.0%")
}

func TestVariantFor(t *testing.T) {
	tests := []struct {
		name               string
		attempted, correct int
		want               MascotVariant
	}{
		{"no history", 0, 0, MascotIdle},
		{"too few answers", 4, 0, MascotIdle},
		{"high accuracy", 10, 8, MascotCelebrating},
		{"low accuracy", 10, 4, MascotEncouraging},
		{"middling", 10, 6, MascotIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := progress.Defaults()
			s.Attempted, s.Correct = tt.attempted, tt.correct
			assert.Equal(t, tt.want, VariantFor(s))
		})
	}
}
