package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"flip/internal/config"
)

var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	sectionHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	mutedText       = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
)

// renderTitle renders the app name and version
func renderTitle() string {
	return appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version)
}

// renderHelp renders usage information
func renderHelp() string {
	row := func(cmd, desc string) string {
		return fmt.Sprintf("  %s  %s", commandName.Render(fmt.Sprintf("%-28s", cmd)), mutedText.Render(desc))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderTitle(),
		sectionHeader.Render("Usage:"),
		row("flip [flags]", "Show the switch, print its value on exit"),
		row("flip version", "Show version"),
		sectionHeader.Render("Flags:"),
		row("-c, --config <file>", "Config file (default flip.yaml)"),
		row("--left <text>", "Left label text"),
		row("--right <text>", "Right label text"),
		row("--right-selected", "Start on the right side"),
		row("--no-mouse", "Keyboard only"),
		row("-v, --version", "Show version"),
		sectionHeader.Render("Keys:"),
		row("space / enter", "Toggle"),
		row("←/h  →/l", "Select left / right"),
		row("esc", "Cancel a drag"),
		row("q / ctrl+c", "Quit"),
	) + "\n"
}
