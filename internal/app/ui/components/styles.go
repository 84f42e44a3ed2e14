package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// SeparatorStyle for header and footer rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// HeaderStyle for the top line
	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	// FooterStyle for the bottom lines
	FooterStyle = lipgloss.NewStyle()

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 1)

	// StatusStyle for the value line under the switch
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)

	// ErrorStyle for config reload errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
