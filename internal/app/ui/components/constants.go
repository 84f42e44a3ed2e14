package components

import "time"

// Animation constants
const (
	// SlideEpsilon is how close position and velocity must be to rest before the slide snaps
	SlideEpsilon = 0.01

	// MinFrameInterval bounds the animation tick rate
	MinFrameInterval = 5 * time.Millisecond
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Switch layout constants
const (
	// ChromeHeight is the rows taken by header, status line and footer
	ChromeHeight = 7
	// BorderCells is the horizontal and vertical cells a rounded border adds
	BorderCells = 2
	// MinSwitchWidth keeps the thumb at least one cell wide inside its border
	MinSwitchWidth = 6
)
