package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/bank"
	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/screen"
	"github.com/abhisek/smartkids/internal/ui/components"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testModel(t *testing.T) (AppModel, *quiz.Machine) {
	t.Helper()
	b, err := bank.New([]bank.Category{{ID: "sky", Name: "Sky", Icon: "☁", Questions: []bank.Question{
		{Prompt: "Sky?", Options: []string{"Blue", "Red", "Green", "Pink"}, Answer: "Blue"},
	}}})
	if err != nil {
		t.Fatalf("bank: %v", err)
	}
	m := quiz.New(context.Background(), quiz.Options{Bank: b, FeedbackDelay: time.Millisecond})
	model := newAppModel(context.Background(), Options{Machine: m})
	model.Init()
	return model, m
}

func update(t *testing.T, model AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := model.Update(msg)
	am, ok := next.(AppModel)
	if !ok {
		t.Fatalf("expected AppModel, got %T", next)
	}
	return am, cmd
}

func activeTitle(model AppModel) string {
	if a := model.router.Active(); a != nil {
		return a.Title()
	}
	return ""
}

func TestInit_ShowsHome(t *testing.T) {
	model, _ := testModel(t)
	if got := activeTitle(model); got != "Home" {
		t.Errorf("expected Home, got %q", got)
	}
}

func TestNavigateToQuizAndBack(t *testing.T) {
	model, m := testModel(t)

	model, _ = update(t, model, specialKey(tea.KeyEnter))
	if got := activeTitle(model); got != "Categories" {
		t.Fatalf("expected Categories, got %q", got)
	}

	model, _ = update(t, model, specialKey(tea.KeyEnter))
	if got := activeTitle(model); got != "Quiz" {
		t.Fatalf("expected Quiz, got %q", got)
	}
	if !strings.Contains(model.status(), "★ 0/1") {
		t.Errorf("unexpected status %q", model.status())
	}

	model, _ = update(t, model, specialKey(tea.KeyEscape))
	if got := activeTitle(model); got != "Categories" {
		t.Errorf("expected Categories after Esc, got %q", got)
	}
	if m.State().Screen != quiz.ScreenCategorySelect {
		t.Errorf("expected machine on category_select, got %s", m.State().Screen)
	}
}

func TestEscOutsideQuizIsIgnored(t *testing.T) {
	model, m := testModel(t)
	model, _ = update(t, model, specialKey(tea.KeyEscape))
	if m.State().Screen != quiz.ScreenHome || activeTitle(model) != "Home" {
		t.Error("expected to stay on home")
	}
}

func TestCtrlCQuits(t *testing.T) {
	model, _ := testModel(t)
	_, cmd := update(t, model, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestAdvanceMsg_CompletesAndCelebrates(t *testing.T) {
	model, m := testModel(t)
	m.GoToCategories()
	m.SelectCategory("sky")

	d, ok := m.SubmitAnswer("Blue")
	if !ok {
		t.Fatal("submit rejected")
	}
	model, cmd := update(t, model, screen.AdvanceMsg{Deferred: d})

	if m.State().Screen != quiz.ScreenResults {
		t.Fatalf("expected results, got %s", m.State().Screen)
	}
	if got := activeTitle(model); got != "Results" {
		t.Errorf("expected Results screen, got %q", got)
	}
	if cmd == nil || !model.confetti.Running() {
		t.Fatal("expected confetti to start on a perfect score")
	}

	// Run the animation out; the first run has ID 1.
	for i := 0; i < 1000 && model.confetti.Running(); i++ {
		model, _ = update(t, model, components.ConfettiTickMsg{ID: 1})
	}
	if model.confetti.Running() {
		t.Fatal("confetti never finished")
	}
	if m.State().Celebrate {
		t.Error("expected celebration acknowledged")
	}
}

func TestAdvanceMsg_StaleIsDropped(t *testing.T) {
	model, m := testModel(t)
	m.GoToCategories()
	m.SelectCategory("sky")

	d, _ := m.SubmitAnswer("Red")
	m.ChangeCategory()

	model, cmd := update(t, model, screen.AdvanceMsg{Deferred: d})
	if cmd != nil {
		t.Error("expected no command for a stale transition")
	}
	if m.State().Screen != quiz.ScreenCategorySelect {
		t.Errorf("expected category_select, got %s", m.State().Screen)
	}
	if model.confetti.Running() {
		t.Error("expected no confetti")
	}
}

func TestWindowSize(t *testing.T) {
	model, _ := testModel(t)
	model, _ = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	if model.width != 120 || model.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", model.width, model.height)
	}
}

func TestRun_RequiresMachine(t *testing.T) {
	if err := Run(context.Background(), Options{}); err == nil {
		t.Error("expected error without a machine")
	}
}
