package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/ui/theme"
)

const mascotArt = `   ╭─────────╮
   │  ◉   ◉  │
   │    ▽    │
   ╰──┬───┬──╯
    ╭─┴───┴─╮
    │ ? ✓ ! │
    ╰───────╯`

const bannerCompact = "S M A R T   K I D S   Q U I Z"

// sparkle frames cycle around the mascot
var sparkleFrames = []string{"★", "✦", "✧"}

// renderBanner returns the title and tagline, centered in cw.
func renderBanner(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("🎓 " + bannerCompact)

	tagline := lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Render("Learn • Play • Think Smart")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n\n" + tagline)
}

// renderMascot draws the mascot with sparkles for the given animation frame.
func renderMascot(frame int) string {
	sparkle := sparkleFrames[frame%len(sparkleFrames)]
	s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

	lines := strings.Split(lipgloss.NewStyle().Foreground(theme.Primary).Render(mascotArt), "\n")
	for i := range lines {
		switch i {
		case 0, 4:
			lines[i] = s1 + "  " + lines[i] + "  " + s2
		case 2, 6:
			lines[i] = s2 + "  " + lines[i] + "  " + s1
		default:
			lines[i] = "   " + lines[i] + "   "
		}
	}
	return strings.Join(lines, "\n")
}
