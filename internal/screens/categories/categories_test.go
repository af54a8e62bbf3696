package categories

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/highscore"
	"github.com/abhisek/smartkids/internal/quiz"
	"github.com/abhisek/smartkids/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newMachine(t *testing.T) *quiz.Machine {
	t.Helper()
	hs := highscore.NewStore(store.NewMemoryKV(), nil)
	hs.Save(context.Background(), highscore.Scores{"math": {Score: 8, AchievedOn: "2026-10-01"}})
	m := quiz.New(context.Background(), quiz.Options{HighScores: hs})
	m.GoToCategories()
	return m
}

func TestView_ListsCategoriesWithScores(t *testing.T) {
	m := newMachine(t)
	c := New(m, m.State())
	v := c.View(100, 60)

	for _, want := range []string{"Choose a Category", "Logic & Reasoning", "Math Fun", "History Highlights", "High: 8 / 10", "High: 0 / 10"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestSelect_StartsQuiz(t *testing.T) {
	m := newMachine(t)
	c := New(m, m.State())

	c.Update(keyPress('j')) // math is second
	c.Update(specialKey(tea.KeyEnter))

	st := m.State()
	if st.Screen != quiz.ScreenInProgress {
		t.Fatalf("expected in_progress, got %s", st.Screen)
	}
	if st.Category.ID != "math" {
		t.Errorf("expected math, got %s", st.Category.ID)
	}
}
