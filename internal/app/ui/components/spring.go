package components

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Slide eases a horizontal position towards a target using spring physics
type Slide struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
}

// NewSlide creates a slide animator ticking at fps
func NewSlide(fps int, frequency, damping float64) *Slide {
	return &Slide{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Jump places the slide at x with no motion
func (s *Slide) Jump(x float64) {
	s.position = x
	s.target = x
	s.velocity = 0
}

// SetTarget starts easing towards x
func (s *Slide) SetTarget(x float64) {
	s.target = x
}

// Update advances one frame and reports whether the slide is still moving
func (s *Slide) Update() bool {
	if s.Settled() {
		return false
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)

	if math.Abs(s.position-s.target) < SlideEpsilon && math.Abs(s.velocity) < SlideEpsilon {
		s.Jump(s.target)
		return false
	}

	return true
}

// Settled reports whether the slide rests exactly on its target
func (s *Slide) Settled() bool {
	return s.position == s.target && s.velocity == 0
}

// Position returns the animated position
func (s *Slide) Position() float64 {
	return s.position
}

// Target returns where the slide is heading
func (s *Slide) Target() float64 {
	return s.target
}
