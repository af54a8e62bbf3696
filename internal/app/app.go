package app

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/router"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/screens/categories"
	"github.com/abhisek/smartkids/internal/screens/home"
	"github.com/abhisek/smartkids/internal/screens/play"
	"github.com/abhisek/smartkids/internal/screens/results"
	"github.com/abhisek/smartkids/internal/ui/components"
	"github.com/abhisek/smartkids/internal/ui/layout"
)

// Options holds the dependencies the TUI runs against.
type Options struct {
	Machine *quiz.Machine
	Logger  *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx      context.Context
	machine  *quiz.Machine
	router   *router.Router
	confetti components.Confetti
	logger   *zap.Logger
	width    int
	height   int
}

// newAppModel wires a router with one screen per machine state.
func newAppModel(ctx context.Context, opts Options) AppModel {
	m := opts.Machine
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	factories := map[quiz.Screen]router.Factory{
		quiz.ScreenHome: func(quiz.State) screen.Screen {
			return home.New(m)
		},
		quiz.ScreenCategorySelect: func(st quiz.State) screen.Screen {
			return categories.New(m, st)
		},
		quiz.ScreenInProgress: func(st quiz.State) screen.Screen {
			return play.New(m, st)
		},
		quiz.ScreenResults: func(quiz.State) screen.Screen {
			return results.New(m)
		},
	}

	return AppModel{
		ctx:      ctx,
		machine:  m,
		router:   router.New(m, factories),
		confetti: components.NewConfetti(nil),
		logger:   logger.Named("app"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Sync()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Back):
			if m.machine.State().Screen == quiz.ScreenInProgress {
				m.machine.ChangeCategory()
				return m, m.router.Sync()
			}
			return m, nil
		}

	case screen.AdvanceMsg:
		if !m.machine.Complete(m.ctx, msg.Deferred) {
			m.logger.Debug("dropped stale transition")
			return m, nil
		}
		cmd := m.router.Sync()
		celebrate := m.celebrate()
		return m, tea.Batch(cmd, celebrate)

	case components.ConfettiTickMsg:
		var cmd tea.Cmd
		var done bool
		m.confetti, cmd, done = m.confetti.Update(msg)
		if done {
			m.machine.AckCelebration()
			// Finishing a quiz may have raised the flag again.
			cmd = m.celebrate()
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	celebrate := m.celebrate()
	return m, tea.Batch(cmd, celebrate)
}

// celebrate starts the confetti when the machine asks for it.
func (m *AppModel) celebrate() tea.Cmd {
	if m.confetti.Running() || !m.machine.State().Celebrate {
		return nil
	}
	var cmd tea.Cmd
	m.confetti, cmd = m.confetti.Start()
	return cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else {
		k := components.Keys
		footerHints = layout.HintsFor(k.Up, k.Down, k.Select, k.Quit)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	strip := m.confetti.View(m.width)
	if strip != "" {
		contentHeight = max(contentHeight-lipgloss.Height(strip)-1, 0)
	}
	content := m.router.View(m.width, contentHeight)
	if strip != "" {
		content = strip + "\n" + content
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// status is the header's right-hand text.
func (m AppModel) status() string {
	st := m.machine.State()
	switch st.Screen {
	case quiz.ScreenInProgress, quiz.ScreenResults:
		return fmt.Sprintf("★ %d/%d  🏆 %d  ", st.Score, st.Total(), st.Best())
	default:
		return ""
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	if opts.Machine == nil {
		return fmt.Errorf("app: no quiz machine")
	}
	p := tea.NewProgram(newAppModel(ctx, opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
