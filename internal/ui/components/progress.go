package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/ui/theme"
)

// ProgressBar shows how far through the quiz the player is.
type ProgressBar struct {
	Current int // 1-based question number
	Total   int
	Width   int
}

// Fraction returns the completed share in [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	return min(max(f, 0), 1)
}

// View renders the label and bar on one line.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Question %d of %d", p.Current, p.Total))
	result := label + "  "

	barWidth := p.Width - lipgloss.Width(result)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return result
}
