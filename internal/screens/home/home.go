package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/ui/components"
	"github.com/abhisek/smartkids/internal/ui/layout"
)

const tickInterval = 300 * time.Millisecond

const buttonWidth = 22

type tickMsg time.Time

// HomeScreen is the title screen.
type HomeScreen struct {
	menu      components.Menu
	tickCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen driving m.
func New(m *quiz.Machine) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			m.GoToCategories()
			return nil
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return tick()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		h.tickCount++
		return h, tick()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	sections := []string{renderBanner(cw)}
	// The mascot needs roughly 22 rows with the banner and menu.
	if height >= 22 {
		sections = append(sections, renderMascot(h.tickCount))
	}
	sections = append(sections, h.menu.View(buttonWidth))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Select, k.Quit)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
