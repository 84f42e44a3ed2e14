package toggle

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"flip/internal/app/geometry"
)

// Listener is called with the new side after the value changes
type Listener func(side Side)

// label is one side's text and its current colour
type label struct {
	text  string
	color lipgloss.TerminalColor
}

// restPositions are the thumb centres for each side
type restPositions struct {
	left  geometry.Point
	right geometry.Point
}

type subscription struct {
	id       int
	listener Listener
}

// Control is a two-state switch driven by press, move, release and cancel events.
// It is not safe for concurrent use; hosts call it from their event loop.
type Control struct {
	side      Side
	bounds    geometry.Rect
	thumbSize geometry.Size
	thumb     geometry.Point
	rest      *restPositions
	drag      dragState

	palette  Palette
	left     label
	right    label
	measurer Measurer

	subscriptions []subscription
	nextID        int
}

// Option configures a Control at construction time
type Option func(*Control)

// WithLabels sets the left and right label texts
func WithLabels(left, right string) Option {
	return func(c *Control) {
		c.left.text = left
		c.right.text = right
	}
}

// WithPalette sets the control colours
func WithPalette(p Palette) Option {
	return func(c *Control) {
		c.palette = p.withDefaults()
	}
}

// WithMeasurer sets how labels are measured for layout queries
func WithMeasurer(m Measurer) Option {
	return func(c *Control) {
		if m != nil {
			c.measurer = m
		}
	}
}

// WithSide sets the initial side without notifying anyone
func WithSide(s Side) Option {
	return func(c *Control) {
		c.side = s
	}
}

// New creates a control resting on the left side
func New(opts ...Option) *Control {
	c := &Control{
		side:     Left,
		drag:     idleDrag{},
		palette:  DefaultPalette(),
		measurer: NewLineMeasurer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.recolor()

	return c
}

// SetBounds lays the control out in new bounds, dropping any gesture in flight
func (c *Control) SetBounds(r geometry.Rect) {
	r.Size = r.Size.Normalize()
	c.bounds = r

	thumbWidth := r.Width() / 2
	c.thumbSize = geometry.Size{Width: thumbWidth, Height: r.Height()}

	left := r.Center().Translate(-thumbWidth/2, 0)
	c.rest = &restPositions{
		left:  left,
		right: left.Translate(thumbWidth, 0),
	}

	c.drag = idleDrag{}
	c.snap()
}

// Press starts a gesture at p
func (c *Control) Press(p geometry.Point) {
	c.drag = pressedDrag{
		insideThumb: c.ThumbRect().Contains(p),
		anchor:      p,
	}
}

// Move drags the thumb horizontally; gestures that began off the thumb are ignored
func (c *Control) Move(p geometry.Point) {
	switch d := c.drag.(type) {
	case pressedDrag:
		if d.insideThumb {
			c.drag = c.dragThumb(d.anchor, p)
		}
	case draggingDrag:
		if d.insideThumb {
			c.drag = c.dragThumb(d.anchor, p)
		}
	}
}

// dragThumb shifts the thumb by the horizontal delta, keeping it on the track
func (c *Control) dragThumb(anchor, p geometry.Point) dragState {
	half := c.thumbSize.Width / 2
	minX := c.bounds.Origin.X + half
	maxX := c.bounds.Origin.X + c.bounds.Width() - half

	c.thumb.X = geometry.Clamp(c.thumb.X+p.X-anchor.X, minX, maxX)

	return draggingDrag{insideThumb: true, anchor: p}
}

// Release resolves the gesture into a side
func (c *Control) Release() {
	switch d := c.drag.(type) {
	case draggingDrag:
		c.drag = idleDrag{}
		if d.insideThumb {
			c.applyState(c.nearestSide())
			return
		}
		c.applyState(c.side)
	case pressedDrag:
		c.drag = idleDrag{}
		if !d.insideThumb {
			c.applyState(c.side.Opposite())
			return
		}
		c.applyState(c.side)
	}
}

// Cancel abandons the gesture and returns the thumb to the current side
func (c *Control) Cancel() {
	c.drag = idleDrag{}
	c.snap()
}

// nearestSide picks the rest position closest to the thumb; ties stay left
func (c *Control) nearestSide() Side {
	if c.rest == nil {
		return c.side
	}

	x := c.thumb.X
	if math.Abs(c.rest.left.X-x) > math.Abs(c.rest.right.X-x) {
		return Right
	}

	return Left
}

// SetSide selects a side directly
func (c *Control) SetSide(s Side) {
	c.applyState(s)
}

// SetRightSelected selects the right side when true, the left side otherwise
func (c *Control) SetRightSelected(rightSelected bool) {
	c.applyState(SideFromBool(rightSelected))
}

// applyState is the single path for committing a side: snap, recolour, notify on change
func (c *Control) applyState(s Side) {
	changed := s != c.side
	c.side = s

	c.snap()
	c.recolor()

	if changed {
		c.notify()
	}
}

// snap moves the thumb onto the current side's rest position once laid out
func (c *Control) snap() {
	if c.rest == nil {
		return
	}

	if c.side == Right {
		c.thumb = c.rest.right
		return
	}

	c.thumb = c.rest.left
}

func (c *Control) recolor() {
	if c.side == Right {
		c.left.color = c.palette.Muted
		c.right.color = c.palette.Accent
		return
	}

	c.left.color = c.palette.Accent
	c.right.color = c.palette.Muted
}

// Subscribe registers a value-changed listener and returns a function removing it
func (c *Control) Subscribe(l Listener) func() {
	c.nextID++
	id := c.nextID
	c.subscriptions = append(c.subscriptions, subscription{id: id, listener: l})

	return func() {
		for i, s := range c.subscriptions {
			if s.id == id {
				c.subscriptions = append(c.subscriptions[:i:i], c.subscriptions[i+1:]...)
				return
			}
		}
	}
}

func (c *Control) notify() {
	subs := make([]subscription, len(c.subscriptions))
	copy(subs, c.subscriptions)

	for _, s := range subs {
		s.listener(c.side)
	}
}

// Side returns the selected side
func (c *Control) Side() Side {
	return c.side
}

// RightSelected reports whether the right side is selected
func (c *Control) RightSelected() bool {
	return c.side == Right
}

// Phase returns the gesture phase
func (c *Control) Phase() Phase {
	return phaseOf(c.drag)
}

// Bounds returns the last laid-out bounds
func (c *Control) Bounds() geometry.Rect {
	return c.bounds
}

// Thumb returns the thumb centre
func (c *Control) Thumb() geometry.Point {
	return c.thumb
}

// ThumbRect returns the thumb's hit area
func (c *Control) ThumbRect() geometry.Rect {
	return geometry.CenteredAt(c.thumb, c.thumbSize)
}

// RestPositions returns the left and right thumb centres; ok is false before the first layout
func (c *Control) RestPositions() (left, right geometry.Point, ok bool) {
	if c.rest == nil {
		return geometry.Point{}, geometry.Point{}, false
	}

	return c.rest.left, c.rest.right, true
}

// LeftText returns the left label text
func (c *Control) LeftText() string {
	return c.left.text
}

// RightText returns the right label text
func (c *Control) RightText() string {
	return c.right.text
}

// SetLeftText changes the left label; hosts should re-query the size afterwards
func (c *Control) SetLeftText(text string) {
	c.left.text = text
}

// SetRightText changes the right label; hosts should re-query the size afterwards
func (c *Control) SetRightText(text string) {
	c.right.text = text
}

// SetMeasurer changes how labels are measured; nil is ignored
func (c *Control) SetMeasurer(m Measurer) {
	if m != nil {
		c.measurer = m
	}
}

// LeftColor returns the left label's current colour
func (c *Control) LeftColor() lipgloss.TerminalColor {
	return c.left.color
}

// RightColor returns the right label's current colour
func (c *Control) RightColor() lipgloss.TerminalColor {
	return c.right.color
}

// Palette returns the control colours
func (c *Control) Palette() Palette {
	return c.palette
}

// SetPalette replaces the colours and recolours the labels
func (c *Control) SetPalette(p Palette) {
	c.palette = p.withDefaults()
	c.recolor()
}
