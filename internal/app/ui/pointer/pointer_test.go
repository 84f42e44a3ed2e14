package pointer

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"flip/internal/app/geometry"
	"flip/internal/config/logger"
)

// fakeTarget records the gesture calls it receives
type fakeTarget struct {
	calls []string
	last  geometry.Point
}

func (f *fakeTarget) Press(p geometry.Point) {
	f.calls = append(f.calls, "press")
	f.last = p
}

func (f *fakeTarget) Move(p geometry.Point) {
	f.calls = append(f.calls, "move")
	f.last = p
}

func (f *fakeTarget) Release() { f.calls = append(f.calls, "release") }
func (f *fakeTarget) Cancel()  { f.calls = append(f.calls, "cancel") }

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Debug()
	mockLog.EXPECT().Debug().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Warn().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().Error().Return(noopEvent).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func mouse(action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Action: action, Button: button}
}

func Test_Tracker_FullGesture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := &fakeTarget{}
	tr := NewTracker(target, newTestLogger(ctrl))
	assert.Equal(t, Idle, tr.State())

	assert.True(t, tr.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft), geometry.Point{X: 2, Y: 1}, true))
	assert.Equal(t, Pressed, tr.State())
	assert.Equal(t, geometry.Point{X: 2, Y: 1}, target.last)

	assert.True(t, tr.Handle(mouse(tea.MouseActionMotion, tea.MouseButtonLeft), geometry.Point{X: 5, Y: 1}, true))
	assert.True(t, tr.Handle(mouse(tea.MouseActionMotion, tea.MouseButtonLeft), geometry.Point{X: 40, Y: 9}, false))
	assert.Equal(t, Dragging, tr.State())
	assert.Equal(t, geometry.Point{X: 40, Y: 9}, target.last)

	assert.True(t, tr.Handle(mouse(tea.MouseActionRelease, tea.MouseButtonNone), geometry.Point{}, false))
	assert.Equal(t, Idle, tr.State())

	assert.Equal(t, []string{"press", "move", "move", "release"}, target.calls)
}

func Test_Tracker_IgnoresStrayEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := &fakeTarget{}
	tr := NewTracker(target, newTestLogger(ctrl))

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		inside bool
	}{
		{name: "Press outside the control", msg: mouse(tea.MouseActionPress, tea.MouseButtonLeft), inside: false},
		{name: "Right button press", msg: mouse(tea.MouseActionPress, tea.MouseButtonRight), inside: true},
		{name: "Wheel", msg: mouse(tea.MouseActionPress, tea.MouseButtonWheelUp), inside: true},
		{name: "Motion without press", msg: mouse(tea.MouseActionMotion, tea.MouseButtonNone), inside: true},
		{name: "Release without press", msg: mouse(tea.MouseActionRelease, tea.MouseButtonNone), inside: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tr.Handle(tt.msg, geometry.Point{}, tt.inside))
			assert.Equal(t, Idle, tr.State())
		})
	}

	assert.Empty(t, target.calls)
}

func Test_Tracker_RepressCancelsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := &fakeTarget{}
	tr := NewTracker(target, newTestLogger(ctrl))

	tr.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft), geometry.Point{X: 1}, true)
	tr.Handle(mouse(tea.MouseActionMotion, tea.MouseButtonLeft), geometry.Point{X: 3}, true)
	tr.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft), geometry.Point{X: 7}, true)

	assert.Equal(t, Pressed, tr.State())
	assert.Equal(t, []string{"press", "move", "cancel", "press"}, target.calls)
	assert.Equal(t, geometry.Point{X: 7}, target.last)
}

func Test_Tracker_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := &fakeTarget{}
	tr := NewTracker(target, newTestLogger(ctrl))

	tr.Cancel()
	assert.Empty(t, target.calls, "cancel while idle is silent")

	tr.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft), geometry.Point{}, true)
	tr.Cancel()

	assert.False(t, tr.Active())
	assert.Equal(t, []string{"press", "cancel"}, target.calls)
}

func Test_Tracker_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := &fakeTarget{}
	tr := NewTracker(target, newTestLogger(ctrl))

	tr.Handle(mouse(tea.MouseActionPress, tea.MouseButtonLeft), geometry.Point{}, true)
	tr.Reset()

	assert.False(t, tr.Active())
	assert.False(t, tr.Handle(mouse(tea.MouseActionRelease, tea.MouseButtonNone), geometry.Point{}, true))
	assert.Equal(t, []string{"press"}, target.calls)
}
