package switchview

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"flip/internal/app/toggle"
	"flip/internal/app/ui/components"
)

// View renders the model
func (m Model) View() string {
	if m.state.quitting || !m.ui.ready {
		return ""
	}

	header := components.RenderHeader(m.ui.width, m.state.title, m.control.Side().String())

	switchView := m.renderSwitch()
	if m.zones != nil {
		switchView = m.zones.Mark(m.zoneID(), switchView)
	}

	body := lipgloss.PlaceHorizontal(m.ui.width, lipgloss.Center, switchView)
	footer := components.RenderFooter(m.ui.width, m.ui.help.View(m.ui.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.renderStatus(), "", footer)
	if m.zones != nil {
		return m.zones.Scan(view)
	}

	return view
}

// renderSwitch paints track, thumb and labels
func (m Model) renderSwitch() string {
	width, height := m.ui.switchWidth, m.ui.switchHeight
	palette := m.control.Palette()

	g := newGrid(width, height, palette.Track)
	g.box(0, width, palette.Muted)
	g.box(m.thumbColumn(), width/2, palette.Accent)

	side := m.control.Side()
	g.label(0, width/2, m.control.LeftText(), m.state.wrap, m.control.LeftColor(), side == toggle.Left)
	g.label(width/2, width-width/2, m.control.RightText(), m.state.wrap, m.control.RightColor(), side == toggle.Right)

	return g.render()
}

// thumbColumn is the thumb's first column at the animated position
func (m Model) thumbColumn() int {
	thumbWidth := m.ui.switchWidth / 2
	column := int(math.Round(m.slide.Position() - float64(thumbWidth)/2))

	if column < 0 {
		return 0
	}

	if column > m.ui.switchWidth-thumbWidth {
		return m.ui.switchWidth - thumbWidth
	}

	return column
}

// renderStatus shows the value and any reload error
func (m Model) renderStatus() string {
	valueStyle := lipgloss.NewStyle().Foreground(components.FgLeft).Bold(true)
	if m.control.RightSelected() {
		valueStyle = valueStyle.Foreground(components.FgRight)
	}

	status := fmt.Sprintf("value: %s", valueStyle.Render(m.control.Side().String()))

	if m.state.reloadErr != nil {
		status += "  " + components.ErrorStyle.Render(fmt.Sprintf("config: %v", m.state.reloadErr))
	}

	return lipgloss.PlaceHorizontal(m.ui.width, lipgloss.Center, components.StatusStyle.Render(status))
}
