package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/router"
	"github.com/abhisek/p2tutor/internal/screens/chat"
	"github.com/abhisek/p2tutor/internal/screens/home"
	"github.com/abhisek/p2tutor/internal/tutor"
)

type memStore struct{ stats progress.Stats }

func (m *memStore) Load() (progress.Stats, error) { return m.stats.Clone(), nil }
func (m *memStore) Save(s progress.Stats) error   { m.stats = s.Clone(); return nil }

func testOptions(st progress.Store) Options {
	return Options{
		Progress: st,
		NewTutor: func(p tutor.Presenter) *tutor.Tutor {
			return tutor.New(tutor.Options{
				Store:     st,
				Presenter: p,
				Rand:      problemgen.NewRand(3),
				Now:       func() time.Time { return time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC) },
			})
		},
		SkipSplash: true,
	}
}

// step applies msg and follows any navigation message the command yields.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestStartsOnHomeWithoutSplash(t *testing.T) {
	m := newAppModel(testOptions(&memStore{stats: progress.Defaults()}))
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
}

func TestPracticeRoundTrip(t *testing.T) {
	st := &memStore{stats: progress.Defaults()}
	m := newAppModel(testOptions(st))
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	cs, ok := m.router.Active().(*chat.ChatScreen)
	require.True(t, ok, "enter on START PRACTICE should open the practice screen")

	assert.Contains(t, cs.Status(), "Problems Solved: 0")

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	p, live := cs.Tutor().Current()
	require.True(t, live)
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.True(t, st.stats.TopicsSeen.Has(problemgen.Topics()[0].StatsLabel))
	assert.NotEmpty(t, p.Prompt)
}
