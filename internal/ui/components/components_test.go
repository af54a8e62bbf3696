package components

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off", Disabled: true},
		{Label: "b"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(keyPress('j'))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected, "stays on last enabled item")

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
	m, _ = m.Update(keyPress('k'))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "a", Action: func() tea.Cmd { ran = "a"; return nil }},
		{Label: "b", Action: func() tea.Cmd { ran = "b"; return tea.Quit }},
	})

	m, _ = m.Update(keyPress('j'))
	_, cmd := m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "b", ran)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenu_IgnoresOtherMessages(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}})
	m, cmd := m.Update(tea.WindowSizeMsg{Width: 10})
	assert.Nil(t, cmd)
	assert.Zero(t, m.Selected)
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "START QUIZ"}, {Label: "EXIT", Detail: "bye"}})
	v := m.View(24)
	assert.Contains(t, v, "▸ START QUIZ")
	assert.Contains(t, v, "EXIT")
	assert.Contains(t, v, "bye")
}

func TestMultiChoice_View(t *testing.T) {
	mc := MultiChoice{Options: []string{"Red", "Blue", "Green", "Pink"}, Cursor: 1, Answer: "Blue"}
	v := mc.View(40)
	assert.Contains(t, v, "▸ 2)  Blue")
	assert.Contains(t, v, "1)  Red")
	assert.NotContains(t, v, "✓", "answer hidden before submit")

	mc.Chosen = "Red"
	v = mc.View(40)
	assert.Contains(t, v, "Blue  ✓")
	assert.Contains(t, v, "Red  ✗")
	assert.NotContains(t, v, "▸")
}

func TestProgressBar(t *testing.T) {
	p := ProgressBar{Current: 3, Total: 10, Width: 40}
	assert.InDelta(t, 0.3, p.Fraction(), 1e-9)
	assert.Contains(t, p.View(), "Question 3 of 10")

	assert.Zero(t, ProgressBar{Current: 1}.Fraction())
	assert.Equal(t, 1.0, ProgressBar{Current: 12, Total: 10}.Fraction())
}

func TestConfetti_Lifecycle(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewPCG(3, 4)))
	assert.False(t, c.Running())
	assert.Empty(t, c.View(20))

	c, cmd := c.Start()
	require.NotNil(t, cmd)
	assert.True(t, c.Running())
	assert.Len(t, strings.Split(c.View(20), "\n"), confettiRows)

	ticks := 0
	for {
		var done bool
		c, cmd, done = c.Update(ConfettiTickMsg{ID: c.id})
		ticks++
		if done {
			assert.Nil(t, cmd)
			break
		}
		require.NotNil(t, cmd)
		require.Less(t, ticks, 1000)
	}
	assert.Equal(t, int(confettiDuration/confettiTick), ticks)
	assert.False(t, c.Running())
}

func TestConfetti_IgnoresStaleTicks(t *testing.T) {
	c, _ := NewConfetti(nil).Start()
	stale := ConfettiTickMsg{ID: c.id}
	c, _ = c.Start()

	next, cmd, done := c.Update(stale)
	assert.False(t, done)
	assert.Nil(t, cmd)
	assert.Equal(t, c, next)
}
