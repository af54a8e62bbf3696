// Package categories renders the category picker.
package categories

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/ui/components"
	"github.com/abhisek/smartkids/internal/ui/layout"
	"github.com/abhisek/smartkids/internal/ui/theme"
)

const buttonWidth = 40

// CategoriesScreen lists every bank category with its high score.
type CategoriesScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*CategoriesScreen)(nil)

// New builds the picker from the machine's bank and current scores.
func New(m *quiz.Machine, st quiz.State) *CategoriesScreen {
	cats := m.Bank().Categories()
	items := make([]components.MenuItem, 0, len(cats))
	for _, c := range cats {
		id := c.ID
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", c.Icon, c.Name),
			Detail: fmt.Sprintf("High: %d / %d", st.HighScores.Best(c.ID), len(c.Questions)),
			Action: func() tea.Cmd {
				m.SelectCategory(id)
				return nil
			},
		})
	}
	return &CategoriesScreen{menu: components.NewMenu(items)}
}

func (c *CategoriesScreen) Init() tea.Cmd {
	return nil
}

func (c *CategoriesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *CategoriesScreen) View(width, height int) string {
	title := theme.Title.Render("Choose a Category")
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", c.menu.View(buttonWidth))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (c *CategoriesScreen) Title() string {
	return "Categories"
}

func (c *CategoriesScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Select, k.Quit)
}
