// Package results renders the end-of-quiz summary.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/ui/components"
	"github.com/abhisek/smartkids/internal/ui/layout"
	"github.com/abhisek/smartkids/internal/ui/theme"
)

const buttonWidth = 24

// ResultsScreen shows the final score and offers a retry.
type ResultsScreen struct {
	machine *quiz.Machine
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)

// New creates a ResultsScreen driving m.
func New(m *quiz.Machine) *ResultsScreen {
	items := []components.MenuItem{
		{Label: "RETRY QUIZ", Action: func() tea.Cmd {
			m.RetryQuiz()
			return nil
		}},
		{Label: "CHANGE CATEGORY", Action: func() tea.Cmd {
			m.ChangeCategory()
			return nil
		}},
	}
	return &ResultsScreen{machine: m, menu: components.NewMenu(items)}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultsScreen) View(width, height int) string {
	st := r.machine.State()
	cw := components.ContentWidth(width)

	lines := []string{
		theme.Title.Render("Quiz Finished!"),
		"",
		theme.Score.Render(fmt.Sprintf("Your Score: %d / %d", st.Score, st.Total())),
		"",
		theme.Body.Render(st.Message().Text),
	}
	if best := st.Best(); best > 0 {
		lines = append(lines, "", theme.Muted.Render(fmt.Sprintf("🏆 High Score: %d", best)))
	}
	if st.NewBest {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("✨ New high score!"))
	}

	card := components.ArcadeCard(strings.Join(lines, "\n"), cw)
	content := lipgloss.JoinVertical(lipgloss.Center, card, "", r.menu.View(buttonWidth))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Select, k.Quit)
}
