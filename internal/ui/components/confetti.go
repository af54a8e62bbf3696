package components

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartkids/internal/ui/theme"
)

const (
	confettiTick     = 80 * time.Millisecond
	confettiDuration = 2400 * time.Millisecond
	confettiRows     = 3
	confettiDensity  = 0.18
)

var confettiGlyphs = []string{"*", "✦", "★", "•", "✧", "◆"}

// ConfettiTickMsg advances a running confetti animation.
type ConfettiTickMsg struct {
	ID int
}

// Confetti is a short celebration strip drawn above the screen content.
type Confetti struct {
	id      int
	elapsed time.Duration
	running bool
	rng     *rand.Rand
}

// NewConfetti creates an idle animation. A nil rng uses the global source.
func NewConfetti(rng *rand.Rand) Confetti {
	return Confetti{rng: rng}
}

// Running reports whether the animation is playing.
func (c Confetti) Running() bool {
	return c.running
}

// Start begins a new run and returns the first tick.
func (c Confetti) Start() (Confetti, tea.Cmd) {
	c.id++
	c.elapsed = 0
	c.running = true
	return c, c.tick()
}

// Update advances the animation. done is true on the tick that ends it.
func (c Confetti) Update(msg ConfettiTickMsg) (next Confetti, cmd tea.Cmd, done bool) {
	if !c.running || msg.ID != c.id {
		return c, nil, false
	}
	c.elapsed += confettiTick
	if c.elapsed >= confettiDuration {
		c.running = false
		return c, nil, true
	}
	return c, c.tick(), false
}

// View renders the strip at width, or nothing when idle.
func (c Confetti) View(width int) string {
	if !c.running || width <= 0 {
		return ""
	}
	rows := make([]string, confettiRows)
	for r := range rows {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if c.float() > confettiDensity {
				b.WriteByte(' ')
				continue
			}
			glyph := confettiGlyphs[c.intN(len(confettiGlyphs))]
			style := theme.ConfettiColors[c.intN(len(theme.ConfettiColors))]
			b.WriteString(style.Render(glyph))
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (c Confetti) tick() tea.Cmd {
	id := c.id
	return tea.Tick(confettiTick, func(time.Time) tea.Msg {
		return ConfettiTickMsg{ID: id}
	})
}

func (c Confetti) float() float64 {
	if c.rng != nil {
		return c.rng.Float64()
	}
	return rand.Float64()
}

func (c Confetti) intN(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}
