package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI chrome around the switch
const (
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgLeft    = lipgloss.Color("11")      // Yellow - left value in the status line
	FgRight   = lipgloss.Color("10")      // Green - right value in the status line
)

// SeparatorColor is the adaptive color for header and footer rules
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// ParseColor turns a config colour string into a terminal colour; empty means no colour
func ParseColor(value string) lipgloss.TerminalColor {
	if value == "" {
		return lipgloss.NoColor{}
	}

	return lipgloss.Color(value)
}
