package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, bright and friendly on a dark terminal.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
	ArcadePink   = lipgloss.Color("#EC4899")
	ArcadeBlue   = lipgloss.Color("#3B82F6")
)

// ConfettiColors is the palette the celebration overlay cycles through.
var ConfettiColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(ArcadeYellow),
	lipgloss.NewStyle().Foreground(ArcadePink),
	lipgloss.NewStyle().Foreground(ArcadeCyan),
	lipgloss.NewStyle().Foreground(Success),
	lipgloss.NewStyle().Foreground(Accent),
	lipgloss.NewStyle().Foreground(ArcadeBlue),
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextDim)

	Score = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)
)
