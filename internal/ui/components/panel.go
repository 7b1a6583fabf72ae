package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for centered panels.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 64)
}

// Frame wraps content in a double border, centered horizontally and
// vertically within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// Button renders a fixed-width menu button.
func Button(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonActive.
			Width(width).
			Align(lipgloss.Center).
			Render("▸ " + label)
	}
	return theme.ButtonInactive.
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}
