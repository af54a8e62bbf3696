package router

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title    string
	session  string
	initRan  bool
	onUpdate func()
	updates  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.updates++
	if s.onUpdate != nil {
		s.onUpdate()
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func testMachine(t *testing.T) *quiz.Machine {
	t.Helper()
	b, err := bank.New([]bank.Category{{ID: "c", Name: "C", Questions: []bank.Question{
		{Prompt: "?", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
	}}})
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	return quiz.New(context.Background(), quiz.Options{Bank: b})
}

// stubFactories records every screen it builds.
func stubFactories(built *[]*stubScreen) map[quiz.Screen]Factory {
	f := func(st quiz.State) screen.Screen {
		s := &stubScreen{title: st.Screen.String(), session: st.SessionID}
		*built = append(*built, s)
		return s
	}
	return map[quiz.Screen]Factory{
		quiz.ScreenHome:           f,
		quiz.ScreenCategorySelect: f,
		quiz.ScreenInProgress:     f,
		quiz.ScreenResults:        f,
	}
}

func TestSync_BuildsInitialScreen(t *testing.T) {
	var built []*stubScreen
	r := New(testMachine(t), stubFactories(&built))

	if r.Active() != nil {
		t.Fatal("expected no active screen before Sync")
	}
	r.Sync()

	if len(built) != 1 {
		t.Fatalf("expected 1 screen built, got %d", len(built))
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if !built[0].initRan {
		t.Error("expected Init() to run on built screen")
	}
	if r.Route() != quiz.ScreenHome {
		t.Errorf("expected route home, got %s", r.Route())
	}
}

func TestSync_NoopWhenUnchanged(t *testing.T) {
	var built []*stubScreen
	r := New(testMachine(t), stubFactories(&built))
	r.Sync()
	r.Sync()

	if len(built) != 1 {
		t.Errorf("expected screen reused, built %d", len(built))
	}
}

func TestUpdate_FollowsMachine(t *testing.T) {
	m := testMachine(t)
	var built []*stubScreen
	r := New(m, stubFactories(&built))
	r.Sync()

	built[0].onUpdate = func() { m.GoToCategories() }
	r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if built[0].updates != 1 {
		t.Errorf("expected message forwarded once, got %d", built[0].updates)
	}
	if got := r.Active().Title(); got != "category_select" {
		t.Errorf("expected active 'category_select', got %q", got)
	}
}

func TestSync_NewSessionGetsNewScreen(t *testing.T) {
	m := testMachine(t)
	var built []*stubScreen
	r := New(m, stubFactories(&built))

	m.GoToCategories()
	m.SelectCategory("c")
	r.Sync()
	first := r.Active()

	m.ChangeCategory()
	m.SelectCategory("c")
	r.Sync()

	if r.Active() == first {
		t.Error("expected a fresh screen for the new session")
	}
	if built[len(built)-1].session == built[0].session {
		t.Error("expected different session IDs")
	}
}

func TestSync_MissingFactory(t *testing.T) {
	r := New(testMachine(t), map[quiz.Screen]Factory{})
	if cmd := r.Sync(); cmd != nil {
		t.Error("expected nil cmd")
	}
	if r.Active() != nil {
		t.Error("expected no active screen")
	}
	if r.View(80, 24) != "" {
		t.Error("expected empty view")
	}
}

func TestView(t *testing.T) {
	var built []*stubScreen
	r := New(testMachine(t), stubFactories(&built))
	r.Sync()

	if got := r.View(80, 24); got != "home" {
		t.Errorf("expected view 'home', got %q", got)
	}
}
