package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette drawn from the Rwandan flag
var (
	Primary   = lipgloss.Color("#00A1DE") // Flag Blue
	Secondary = lipgloss.Color("#20603D") // Flag Green
	Accent    = lipgloss.Color("#FAD201") // Flag Yellow
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	Mint      = lipgloss.Color("#D1E7DD") // Stats bar
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat
var (
	TutorPrefix = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	StudentPrefix = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusBar = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Mint).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Focused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent)

	Blurred = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Accent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
