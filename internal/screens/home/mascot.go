package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // No history yet, or middling accuracy
	MascotCelebrating                      // Accuracy at or above celebrateAt
	MascotEncouraging                      // Accuracy below encourageAt
)

const (
	// mascotMinAttempts is how many answers are needed before the
	// mascot reacts to accuracy.
	mascotMinAttempts = 5
	celebrateAt       = 80.0
	encourageAt       = 50.0
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−× │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ◡  │
│ +−× │
└─╥═╥─┘
  ╚═╝`

const mascotEncouraging = `┌─────┐
│ ◉ ◉ │ ♥
│  ○  │
│ +−× │
└─────┘`

// VariantFor picks the mascot mood from the learner's stats.
func VariantFor(s progress.Stats) MascotVariant {
	if s.Attempted < mascotMinAttempts {
		return MascotIdle
	}
	switch acc := s.Accuracy(); {
	case acc >= celebrateAt:
		return MascotCelebrating
	case acc < encourageAt:
		return MascotEncouraging
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotEncouraging:
		art = mascotEncouraging
		fg = theme.Secondary
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
