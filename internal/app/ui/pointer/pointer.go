package pointer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/looplab/fsm"

	"flip/internal/app/errors"
	"flip/internal/app/geometry"
	"flip/internal/config/logger"
)

// FSM states
const (
	Idle     = "idle"
	Pressed  = "pressed"
	Dragging = "dragging"
)

// FSM events
const (
	Press   = "press"
	Move    = "move"
	Release = "release"
	Cancel  = "cancel"
)

// FSM callbacks
const (
	OnPressed = "enter_" + Pressed
	OnMove    = "after_" + Move
	OnRelease = "after_" + Release
	OnCancel  = "after_" + Cancel
)

// Target receives the gesture a mouse stream describes
type Target interface {
	Press(p geometry.Point)
	Move(p geometry.Point)
	Release()
	Cancel()
}

// Tracker turns raw terminal mouse events into one well-formed press/move/release gesture at a time
type Tracker struct {
	fsm    *fsm.FSM
	target Target
	log    logger.Logger
}

// NewTracker creates a tracker feeding target
func NewTracker(target Target, log logger.Logger) *Tracker {
	t := &Tracker{
		target: target,
		log:    log.WithComponent("POINTER"),
	}

	t.fsm = fsm.NewFSM(
		Idle,
		fsm.Events{
			{Name: Press, Src: []string{Idle}, Dst: Pressed},
			{Name: Move, Src: []string{Pressed, Dragging}, Dst: Dragging},
			{Name: Release, Src: []string{Pressed, Dragging}, Dst: Idle},
			{Name: Cancel, Src: []string{Pressed, Dragging}, Dst: Idle},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if e.Src != e.Dst {
					t.log.Debug().Msgf("POINTER: %s → %s (trigger: %s)", e.Src, e.Dst, e.Event)
				}
			},
			OnPressed: func(ctx context.Context, e *fsm.Event) {
				t.target.Press(pointArg(e))
			},
			OnMove: func(ctx context.Context, e *fsm.Event) {
				t.target.Move(pointArg(e))
			},
			OnRelease: func(ctx context.Context, e *fsm.Event) {
				t.target.Release()
			},
			OnCancel: func(ctx context.Context, e *fsm.Event) {
				t.target.Cancel()
			},
		},
	)

	return t
}

// Handle feeds one mouse event, already mapped to control-local coordinates.
// inside tells whether the event landed on the control; only presses care.
// It reports whether the event was consumed.
func (t *Tracker) Handle(msg tea.MouseMsg, local geometry.Point, inside bool) bool {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}

		if t.Active() {
			// a release got lost; start over rather than stitch two gestures together
			t.fire(Cancel)
		}

		if !inside {
			return false
		}

		t.fire(Press, local)

		return true

	case tea.MouseActionMotion:
		if !t.Active() {
			return false
		}

		t.fire(Move, local)

		return true

	case tea.MouseActionRelease:
		if !t.Active() {
			return false
		}

		t.fire(Release)

		return true
	}

	return false
}

// Cancel aborts the gesture in flight, if any
func (t *Tracker) Cancel() {
	if t.Active() {
		t.fire(Cancel)
	}
}

// Reset forgets the gesture without telling the target, for when the target reset itself
func (t *Tracker) Reset() {
	t.fsm.SetState(Idle)
}

// Active reports whether a gesture is in progress
func (t *Tracker) Active() bool {
	return t.fsm.Current() != Idle
}

// State returns the tracker state
func (t *Tracker) State() string {
	return t.fsm.Current()
}

func (t *Tracker) fire(event string, args ...interface{}) {
	err := t.fsm.Event(context.Background(), event, args...)
	if err == nil {
		return
	}

	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}

	t.log.Warn().Err(err).Msgf("Pointer event '%s' rejected in state '%s'", event, t.fsm.Current())
}

func pointArg(e *fsm.Event) geometry.Point {
	if len(e.Args) == 0 {
		return geometry.Point{}
	}

	p, _ := e.Args[0].(geometry.Point)

	return p
}
