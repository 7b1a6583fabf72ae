package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/router"
	"github.com/abhisek/p2tutor/internal/screen"
	"github.com/abhisek/p2tutor/internal/ui/components"
	"github.com/abhisek/p2tutor/internal/ui/layout"
)

// Options wires the home screen to the rest of the application.
type Options struct {
	// Progress is read for the dashboard. May be nil.
	Progress progress.Store

	// Practice builds the tutoring screen.
	Practice func() screen.Screen

	// Stats builds the progress report screen.
	Stats func() screen.Screen
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts       Options
	menu       components.Menu
	menuLabels []string
	stats      progress.Stats
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{
		opts:       opts,
		menuLabels: []string{"START PRACTICE", "MY PROGRESS", "EXIT"},
	}

	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			if factory == nil {
				return nil
			}
			s := factory()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: h.menuLabels[0], Action: push(opts.Practice), Disabled: opts.Practice == nil},
		{Label: h.menuLabels[1], Action: push(opts.Stats), Disabled: opts.Stats == nil},
		{Label: h.menuLabels[2], Action: func() tea.Cmd { return tea.Quit }},
	})
	h.reload()
	return h
}

func (h *HomeScreen) reload() {
	h.stats = progress.Defaults()
	if h.opts.Progress == nil {
		return
	}
	if s, err := h.opts.Progress.Load(); err == nil {
		h.stats = s
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the dashboard after a practice session.
func (h *HomeScreen) Resume() tea.Cmd {
	h.reload()
	return nil
}

// Stats returns the totals shown on the dashboard.
func (h *HomeScreen) Stats() progress.Stats {
	return h.stats
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer bars.
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(VariantFor(h.stats), cw))
	}
	sections = append(sections,
		renderStatsBar(h.stats, cw, compact),
		renderMenu(h.menuLabels, h.menu.Selected, cw, compact),
	)

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
