package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"flip/internal/config"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Toggle.Keys(), " ")
	assert.Contains(t, km.Toggle.Keys(), "enter")
	assert.Contains(t, km.Left.Keys(), "h")
	assert.Contains(t, km.Right.Keys(), "l")
	assert.Contains(t, km.Cancel.Keys(), "esc")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 2)
}

func Test_ParseColor(t *testing.T) {
	assert.Equal(t, lipgloss.NoColor{}, ParseColor(""))
	assert.Equal(t, lipgloss.Color("#ff0000"), ParseColor("#ff0000"))
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "Fits", input: "switch", width: 10, expected: "switch"},
		{name: "Shortened", input: "switchboard", width: 6, expected: "switc…"},
		{name: "Single cell", input: "switch", width: 1, expected: "…"},
		{name: "No room", input: "switch", width: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	header := RenderHeader(40, "flip", "right")

	assert.Contains(t, header, "flip")
	assert.Contains(t, header, "right")
	assert.False(t, strings.Contains(header, "\n"))
}

func Test_RenderFooter(t *testing.T) {
	footer := RenderFooter(40, "space toggle")

	assert.Contains(t, footer, "v"+config.Version)
	assert.Contains(t, footer, "space toggle")
	assert.Equal(t, 2, lipgloss.Height(footer))
}
