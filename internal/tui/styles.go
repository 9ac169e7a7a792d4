package tui

import "github.com/charmbracelet/lipgloss"

// AppName is shown in the header.
const AppName = "TAGFIELD"

// DefaultWidth is used until the terminal reports its size.
const DefaultWidth = 60

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	AccentColor  = lipgloss.Color("#43BF6D") // Green
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
	BorderColor  = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Field box around all chips
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	// Committed chip
	ChipStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor)

	// Hint text of an empty chip
	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Text being edited
	EditStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)
