package toggle

import "github.com/charmbracelet/lipgloss"

// Palette holds the colours of the control
type Palette struct {
	// Accent colours the selected label and the thumb border
	Accent lipgloss.TerminalColor
	// Muted colours the unselected label and the track border
	Muted lipgloss.TerminalColor
	// Track fills the track background
	Track lipgloss.TerminalColor
}

// DefaultPalette returns the built-in colours
func DefaultPalette() Palette {
	return Palette{
		Accent: lipgloss.Color("#7D56F4"),
		Muted:  lipgloss.Color("7"),
		Track:  lipgloss.NoColor{},
	}
}

// withDefaults fills any nil colour from DefaultPalette
func (p Palette) withDefaults() Palette {
	d := DefaultPalette()

	if p.Accent == nil {
		p.Accent = d.Accent
	}

	if p.Muted == nil {
		p.Muted = d.Muted
	}

	if p.Track == nil {
		p.Track = d.Track
	}

	return p
}
