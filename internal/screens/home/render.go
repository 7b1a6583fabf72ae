package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/progress"
	"github.com/abhisek/p2tutor/internal/ui/components"
	"github.com/abhisek/p2tutor/internal/ui/theme"
)

const titleFull = "Rwandan P2 Math Tutor"

const titleCompact = "P2 Math"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	title := style.Render(text)
	if !compact {
		title += "\n" + theme.Subtitle.Render("Muraho! Choose what to do next.")
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

// renderStatsBar renders the learner's totals in a bordered box matching
// content width.
func renderStatsBar(s progress.Stats, cw int, compact bool) string {
	solved := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	acc := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	level := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			solved.Render(fmt.Sprintf("✎%d", s.Attempted)),
			acc.Render(fmt.Sprintf("✓%.0f%%", s.Accuracy())),
			level.Render(string(s.Difficulty)),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			solved.Render(fmt.Sprintf("✎ %d SOLVED", s.Attempted)),
			acc.Render(fmt.Sprintf("✓ %.1f%% CORRECT", s.Accuracy())),
			level.Render("LEVEL "+strings.ToUpper(string(s.Difficulty))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderMenu(labels []string, selected int, cw int, compact bool) string {
	var lines []string
	for i, label := range labels {
		if compact {
			if i == selected {
				lines = append(lines, theme.Selected.Render(" ▸ "+label))
			} else {
				lines = append(lines, theme.Unselected.Render("   "+label))
			}
			continue
		}
		lines = append(lines, components.Button(label, i == selected, buttonWidth))
	}
	sep := "\n"
	if !compact {
		sep = "\n\n"
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, sep))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
