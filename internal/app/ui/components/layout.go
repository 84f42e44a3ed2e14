package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flip/internal/config"
)

// RenderLine renders a horizontal rule of the given width
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders ─── <title> ─────── <info> ───, truncating the title when short of room
func RenderHeader(width int, title, info string) string {
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if lipgloss.Width(title) > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
	}

	separatorWidth := width - lipgloss.Width(title) - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return HeaderStyle.Render(RenderLine(3) + " " + title + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders the version rule followed by the help line
func RenderFooter(width int, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)

	separatorWidth := width - lipgloss.Width(version) - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	versionLine := RenderLine(separatorWidth) + " " + version + " " + RenderLine(3)

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, HelpStyle.Render(helpText)))
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}
