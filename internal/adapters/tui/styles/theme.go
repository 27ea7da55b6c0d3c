package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Kind colors
	KindRust   = lipgloss.Color("#F97316") // Orange
	KindNode   = lipgloss.Color("#84CC16") // Lime
	KindGo     = lipgloss.Color("#60A5FA") // Blue
	KindPython = lipgloss.Color("#FACC15") // Yellow
	KindMaven  = lipgloss.Color("#EC4899") // Pink
	KindDotnet = lipgloss.Color("#8B5CF6") // Violet

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Project list styles
	RowName = lipgloss.NewStyle().
		Bold(true)

	RowPath = lipgloss.NewStyle().
		Foreground(Muted)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	KindBadge = lipgloss.NewStyle().
			Foreground(Secondary)

	// Filter input
	FilterPrompt = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Spinner
	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Section label
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// KindColor returns the color for a project kind name
func KindColor(kind string) lipgloss.Color {
	switch kind {
	case "rust":
		return KindRust
	case "node":
		return KindNode
	case "go":
		return KindGo
	case "python":
		return KindPython
	case "maven":
		return KindMaven
	case "dotnet":
		return KindDotnet
	default:
		return Muted
	}
}
