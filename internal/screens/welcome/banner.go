package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/p2tutor/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗    ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ██╔══██╗╚════██╗   ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██████╔╝ █████╔╝   ██╔████╔██║███████║   ██║   ███████║
 ██╔═══╝ ██╔═══╝    ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║     ███████╗   ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚══════╝   ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "P 2 · M A T H"

// RenderBanner returns the P2 MATH banner styled in the accent color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

const flagWidth = 22

// sunFrames alternate to make the flag's sun shimmer.
var sunFrames = []string{"☀", "✹"}

// RenderFlag draws the Rwandan flag: a blue band carrying the sun, then
// yellow and green bands.
func RenderFlag(frame int) string {
	sun := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Background(theme.Primary).
		Bold(true).
		Render(sunFrames[frame%len(sunFrames)])

	blue := lipgloss.NewStyle().Background(theme.Primary)
	yellow := lipgloss.NewStyle().Background(theme.Accent)
	green := lipgloss.NewStyle().Background(theme.Secondary)

	rows := []string{
		blue.Render(strings.Repeat(" ", flagWidth-4)) + sun + blue.Render("   "),
		blue.Render(strings.Repeat(" ", flagWidth)),
		yellow.Render(strings.Repeat(" ", flagWidth)),
		green.Render(strings.Repeat(" ", flagWidth)),
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(strings.Join(rows, "\n"))
}
