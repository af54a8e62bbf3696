// Package play renders a running quiz.
package play

import (
	"fmt"
	"slices"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/ui/components"
	"github.com/abhisek/smartkids/internal/ui/layout"
	"github.com/abhisek/smartkids/internal/ui/theme"
)

// PlayScreen shows the current question and forwards answers to the machine.
type PlayScreen struct {
	machine *quiz.Machine
	cursor  int
	index   int // question the cursor belongs to
}

var _ screen.Screen = (*PlayScreen)(nil)

// New creates a PlayScreen for the session in st.
func New(m *quiz.Machine, st quiz.State) *PlayScreen {
	return &PlayScreen{machine: m, index: st.Index}
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return p, nil
	}
	return p, p.handleKey(kmsg)
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	st := p.machine.State()
	q, ok := st.Current()
	if !ok {
		return nil
	}
	if st.Index != p.index {
		p.index = st.Index
		p.cursor = 0
	}
	if st.Answered {
		return nil
	}

	switch {
	case key.Matches(msg, components.Keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
		p.machine.SelectOption(q.Options[p.cursor])

	case key.Matches(msg, components.Keys.Down):
		if p.cursor < len(q.Options)-1 {
			p.cursor++
		}
		p.machine.SelectOption(q.Options[p.cursor])

	case key.Matches(msg, components.Keys.Pick):
		n := int(msg.String()[0] - '1')
		if n >= 0 && n < len(q.Options) {
			p.cursor = n
			p.machine.SelectOption(q.Options[n])
		}

	case key.Matches(msg, components.Keys.Select):
		choice := st.Selected
		if choice == "" {
			choice = q.Options[p.cursor]
		}
		return p.submit(choice)
	}
	return nil
}

// submit answers and schedules the advance once the feedback delay passes.
func (p *PlayScreen) submit(option string) tea.Cmd {
	d, ok := p.machine.SubmitAnswer(option)
	if !ok {
		return nil
	}
	return tea.Tick(d.Delay, func(time.Time) tea.Msg {
		return screen.AdvanceMsg{Deferred: d}
	})
}

func (p *PlayScreen) View(width, height int) string {
	st := p.machine.State()
	q, ok := st.Current()
	if !ok {
		return ""
	}

	cw := components.ContentWidth(width)

	cursor := p.cursor
	if st.Index != p.index {
		cursor = 0
	}
	if i := slices.Index(q.Options, st.Selected); i >= 0 {
		cursor = i
	}

	heading := lipgloss.NewStyle().Width(cw).Render(
		theme.Body.Bold(true).Render(fmt.Sprintf("%s %s", st.Category.Icon, st.Category.Name)) +
			"   " + theme.Score.Render(fmt.Sprintf("Score: %d", st.Score)))

	progress := components.ProgressBar{Current: st.Index + 1, Total: st.Total(), Width: cw}

	prompt := components.ArcadeCard(theme.Body.Bold(true).Render(q.Prompt), cw)

	choice := components.MultiChoice{Options: q.Options, Cursor: cursor, Answer: q.Answer}
	if st.Answered {
		choice.Chosen = st.Selected
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		progress.View(),
		"",
		prompt,
		"",
		choice.View(cw),
		"",
		renderFeedback(st.Feedback),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderFeedback(f quiz.Feedback) string {
	switch f {
	case quiz.FeedbackCorrect:
		return theme.Correct.Render("🎉 Correct!")
	case quiz.FeedbackWrong:
		return theme.Incorrect.Render("❌ Wrong!")
	default:
		return theme.Hint.Render("Pick an answer and press Enter")
	}
}

func (p *PlayScreen) Title() string {
	return "Quiz"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	k := components.Keys
	return layout.HintsFor(k.Up, k.Down, k.Pick, k.Select, k.Back, k.Quit)
}
