// Package stats shows the learner's saved progress and, when an event log
// is available, per-topic results.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/problemgen"
	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/router"
	"github.com/abhisek/p2tutor/internal/screen"
	"github.com/abhisek/p2tutor/internal/store"
	"github.com/abhisek/p2tutor/internal/ui/components"
	"github.com/abhisek/p2tutor/internal/ui/layout"
	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// recentLimit is how many recent answers are listed.
const recentLimit = 5

type statsLoadedMsg struct {
	Stats  progress.Stats
	Topics []store.TopicSummary
	Recent []store.AnswerEvent
	Err    error
}

// StatsScreen displays overall and per-topic progress.
type StatsScreen struct {
	progress progress.Store
	events   store.EventRepo

	stats  progress.Stats
	topics []store.TopicSummary
	recent []store.AnswerEvent
	loaded bool
	errMsg string
}

var (
	_ screen.Screen          = (*StatsScreen)(nil)
	_ screen.KeyHintProvider = (*StatsScreen)(nil)
	_ screen.Resumer         = (*StatsScreen)(nil)
)

// New creates a StatsScreen. events may be nil when no event log is open.
func New(ps progress.Store, events store.EventRepo) *StatsScreen {
	return &StatsScreen{
		progress: ps,
		events:   events,
		stats:    progress.Defaults(),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	ps, events := s.progress, s.events
	return func() tea.Msg {
		msg := statsLoadedMsg{Stats: progress.Defaults()}
		if ps != nil {
			st, err := ps.Load()
			if err != nil {
				msg.Err = err
			}
			msg.Stats = st
		}
		if events == nil {
			return msg
		}

		ctx := context.Background()
		topics, err := events.TopicSummaries(ctx)
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Topics = topics

		recent, err := events.RecentAnswers(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			msg.Err = err
			return msg
		}
		msg.Recent = recent
		return msg
	}
}

// Resume reloads the figures.
func (s *StatsScreen) Resume() tea.Cmd {
	return s.Init()
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		s.stats = msg.Stats
		s.topics = msg.Topics
		s.recent = msg.Recent
		s.errMsg = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	cw := components.ContentWidth(width)
	sections := []string{s.renderOverview(cw)}

	if len(s.stats.TopicsSeen) > 0 {
		sections = append(sections, components.Card(
			theme.Title.Render("Topics practiced")+"\n"+strings.Join(s.stats.TopicsSeen.Sorted(), ", "), cw))
	}
	if len(s.topics) > 0 {
		sections = append(sections, s.renderTopics(cw))
	}
	if len(s.recent) > 0 {
		sections = append(sections, s.renderRecent(cw))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+s.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func (s *StatsScreen) renderOverview(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Overall"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Problems solved:  %d\n", s.stats.Attempted)
	fmt.Fprintf(&b, "Correct answers:  %d\n", s.stats.Correct)
	fmt.Fprintf(&b, "Difficulty level: %s\n", s.stats.Difficulty)
	b.WriteString(components.NewProgressBar("Accuracy", s.stats.Accuracy(), true, cw-6).View())
	return components.Card(b.String(), cw)
}

func (s *StatsScreen) renderTopics(cw int) string {
	lines := []string{theme.Title.Render("By topic")}
	for _, t := range s.topics {
		label := topicLabel(t.Topic)
		bar := components.NewProgressBar("", t.Accuracy(), true, max(cw-34, 10))
		lines = append(lines, fmt.Sprintf("%-22s %3d/%-3d %s",
			truncate(label, 22), t.Correct, t.Attempted, bar.View()))
		if t.Hints > 0 {
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("%22s 💡 %d hints", "", t.Hints)))
		}
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func (s *StatsScreen) renderRecent(cw int) string {
	lines := []string{theme.Title.Render("Recent answers")}
	for _, e := range s.recent {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if e.Outcome != "correct" {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s → %s",
			mark, e.Timestamp.Format("Jan 02 15:04"), truncate(e.Prompt, cw-30), e.Given))
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func topicLabel(id string) string {
	if info, err := problemgen.Lookup(problemgen.Topic(id)); err == nil {
		return info.Label
	}
	return id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
