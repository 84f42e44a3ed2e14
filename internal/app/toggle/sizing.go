package toggle

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"flip/internal/app/geometry"
)

// thumbAspect is the extra width reserved for the thumb, in multiples of the height
const thumbAspect = 1.5

// Measurer reports the size a label needs when offered the given box
type Measurer interface {
	Measure(text string, box geometry.Size) geometry.Size
	Natural(text string) geometry.Size
}

// lineMeasurer keeps labels on a single line, ignoring the offered box
type lineMeasurer struct{}

// NewLineMeasurer returns a measurer for single-line labels
func NewLineMeasurer() Measurer {
	return lineMeasurer{}
}

func (lineMeasurer) Measure(text string, _ geometry.Size) geometry.Size {
	return naturalSize(text)
}

func (lineMeasurer) Natural(text string) geometry.Size {
	return naturalSize(text)
}

// wrapMeasurer word-wraps labels to the offered width
type wrapMeasurer struct{}

// NewWrapMeasurer returns a measurer that wraps labels at word boundaries
func NewWrapMeasurer() Measurer {
	return wrapMeasurer{}
}

func (wrapMeasurer) Measure(text string, box geometry.Size) geometry.Size {
	limit := int(math.Floor(math.Max(0, box.Width)))
	if limit == 0 {
		return naturalSize(text)
	}

	return naturalSize(wordwrap.String(text, limit))
}

func (wrapMeasurer) Natural(text string) geometry.Size {
	return naturalSize(text)
}

// naturalSize measures rendered text in cells; empty text takes no room
func naturalSize(text string) geometry.Size {
	if text == "" {
		return geometry.Size{}
	}

	return geometry.Size{
		Width:  float64(lipgloss.Width(text)),
		Height: float64(lipgloss.Height(text)),
	}
}

// desiredSize fits both labels side by side plus a thumb as wide as 1.5x the height
func desiredSize(left, right geometry.Size) geometry.Size {
	height := math.Max(left.Height, right.Height)

	return geometry.Size{
		Width:  math.Max(left.Width, right.Width)*2 + thumbAspect*height,
		Height: height,
	}.Normalize()
}

// SizeThatFits returns the minimum size for the control within the available size
func (c *Control) SizeThatFits(available geometry.Size) geometry.Size {
	available = available.Normalize()

	box := geometry.Size{
		Width:  (available.Width - thumbAspect*available.Height) / 2,
		Height: available.Height,
	}.Normalize()

	return desiredSize(
		c.measurer.Measure(c.left.text, box),
		c.measurer.Measure(c.right.text, box),
	)
}

// IntrinsicSize returns the minimum size using each label's natural size
func (c *Control) IntrinsicSize() geometry.Size {
	return desiredSize(
		c.measurer.Natural(c.left.text),
		c.measurer.Natural(c.right.text),
	)
}
