package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/ui/theme"
)

// MultiChoice renders a four-option answer list. It holds no state of its
// own; the caller fills it from the current question each frame.
type MultiChoice struct {
	Options []string
	Cursor  int    // highlighted row before submitting
	Chosen  string // submitted option, empty until answered
	Answer  string // correct option, revealed once Chosen is set
}

// View renders the options, numbered from 1.
func (m MultiChoice) View(width int) string {
	rows := make([]string, 0, len(m.Options))
	answered := m.Chosen != ""

	for i, opt := range m.Options {
		prefix := "  "
		if !answered && i == m.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Width(width)
		switch {
		case answered && opt == m.Answer:
			style = style.Foreground(theme.Success).Bold(true)
			line += "  ✓"
		case answered && opt == m.Chosen:
			style = style.Foreground(theme.Error).Bold(true)
			line += "  ✗"
		case answered:
			style = style.Foreground(theme.TextDim)
		case i == m.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		rows = append(rows, style.Render(line))
	}

	return strings.Join(rows, "\n")
}
