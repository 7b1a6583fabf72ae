package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/router"
	"github.com/abhisek/p2tutor/internal/screen"
	"github.com/abhisek/p2tutor/internal/screens/chat"
	"github.com/abhisek/p2tutor/internal/screens/home"
	"github.com/abhisek/p2tutor/internal/screens/stats"
	"github.com/abhisek/p2tutor/internal/screens/welcome"
	"github.com/abhisek/p2tutor/internal/store"
	"github.com/abhisek/p2tutor/internal/ui/layout"
)

// Options holds the dependencies shared by the screens.
type Options struct {
	// Progress stores the learner's statistics.
	Progress progress.Store

	// Events is the optional practice event log.
	Events store.EventRepo

	// NewTutor builds a tutor for each practice session.
	NewTutor chat.Builder

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel starting at the splash screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Progress: opts.Progress,
			Practice: func() screen.Screen { return chat.New(opts.NewTutor) },
			Stats:    func() screen.Screen { return stats.New(opts.Progress, opts.Events) },
		})
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
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
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
