package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
)

// Factory builds the screen for a machine state.
type Factory func(st quiz.State) screen.Screen

// route identifies which screen instance is live. A new session on the same
// machine screen gets a fresh screen.
type route struct {
	screen  quiz.Screen
	session string
}

// Router keeps the active screen in step with the quiz machine.
type Router struct {
	machine   *quiz.Machine
	factories map[quiz.Screen]Factory
	active    screen.Screen
	current   route
	synced    bool
}

// New creates a Router. Call Sync to build the first screen.
func New(m *quiz.Machine, factories map[quiz.Screen]Factory) *Router {
	return &Router{
		machine:   m,
		factories: factories,
	}
}

// Sync swaps the active screen if the machine moved, and returns the new
// screen's Init command.
func (r *Router) Sync() tea.Cmd {
	st := r.machine.State()
	next := route{screen: st.Screen, session: st.SessionID}
	if r.synced && next == r.current {
		return nil
	}

	factory, ok := r.factories[st.Screen]
	if !ok {
		return nil
	}
	r.current = next
	r.synced = true
	r.active = factory(st)
	return r.active.Init()
}

// Active returns the live screen, or nil before the first Sync.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Route returns the machine screen the active screen was built for.
func (r *Router) Route() quiz.Screen {
	return r.current.screen
}

// Update forwards a message to the active screen, then follows any machine
// transition the screen caused.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return r.Sync()
	}

	updated, cmd := r.active.Update(msg)
	r.active = updated
	return tea.Batch(cmd, r.Sync())
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
