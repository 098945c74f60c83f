package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, soft and low-contrast.
var (
	Primary   = lipgloss.Color("#7C9CBF") // Dusk Blue
	Secondary = lipgloss.Color("#6FB7A8") // Sage
	Accent    = lipgloss.Color("#E0B872") // Sand
	Calm      = lipgloss.Color("#7FBF8F") // Leaf
	Warn      = lipgloss.Color("#E3A868") // Apricot
	Alert     = lipgloss.Color("#D9787A") // Clay
	Text      = lipgloss.Color("#EEF2F5") // Mist
	TextDim   = lipgloss.Color("#8D9BA8") // Fog
	BgDark    = lipgloss.Color("#15202B") // Night
	BgCard    = lipgloss.Color("#1F2D3A") // Slate
	Border    = lipgloss.Color("#33475A") // Harbor
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Quote = lipgloss.NewStyle().
		Foreground(Accent).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Alert)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	TabActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// CategoryColor maps a stress category name (low, moderate, high) to a color.
func CategoryColor(category string) color.Color {
	switch category {
	case "low":
		return Calm
	case "moderate":
		return Warn
	case "high":
		return Alert
	default:
		return Text
	}
}
