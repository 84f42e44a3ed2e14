package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Slide_Jump(t *testing.T) {
	s := NewSlide(60, 12, 0.9)
	s.Jump(4)

	assert.True(t, s.Settled())
	assert.Equal(t, 4.0, s.Position())
	assert.False(t, s.Update(), "a settled slide does not move")
}

func Test_Slide_SettlesOnTarget(t *testing.T) {
	s := NewSlide(60, 12, 0.9)
	s.Jump(0)
	s.SetTarget(20)

	assert.False(t, s.Settled())

	frames := 0
	for s.Update() {
		frames++
		if frames > 1000 {
			t.Fatal("slide never settled")
		}
	}

	assert.Greater(t, frames, 1)
	assert.True(t, s.Settled())
	assert.Equal(t, 20.0, s.Position())
	assert.Equal(t, 20.0, s.Target())
}

func Test_Slide_MovesTowardsTarget(t *testing.T) {
	s := NewSlide(60, 12, 0.9)
	s.Jump(10)
	s.SetTarget(0)

	s.Update()

	assert.Less(t, s.Position(), 10.0)
}
