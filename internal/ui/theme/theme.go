package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: night-sky blues with an orange trail marker.
var (
	Primary   = lipgloss.Color("#60A5FA") // Blue 400
	Secondary = lipgloss.Color("#3B82F6") // Blue 500
	Accent    = lipgloss.Color("#F97316") // Orange 500
	Highlight = lipgloss.Color("#FDBA74") // Orange 300
	Success   = lipgloss.Color("#4ADE80") // Green 400
	Error     = lipgloss.Color("#F87171") // Red 400
	Text      = lipgloss.Color("#DBEAFE") // Blue 100
	TextDim   = lipgloss.Color("#BFDBFE") // Blue 200
	BgDark    = lipgloss.Color("#0F172A") // Slate 900
	BgCard    = lipgloss.Color("#1E3A8A") // Blue 900
	Border    = lipgloss.Color("#60A5FA") // Blue 400
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Emphasis = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)
)

// Layout
var (
	// Bar frames the header and footer rows.
	Bar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	Key = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Blank marks the gap of a fill-in-the-blank sentence.
	Blank = lipgloss.NewStyle().
		Foreground(Accent).
		Underline(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Accent)

	ProgressEmpty = lipgloss.NewStyle().
			Background(BgCard)

	ButtonActive = lipgloss.NewStyle().
			Background(Accent).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
