package toggle

import "flip/internal/app/geometry"

// dragState is the gesture in flight; exactly one variant is live at a time
type dragState interface {
	isDragState()
}

// idleDrag means no gesture is in progress
type idleDrag struct{}

// pressedDrag is a press that has not moved yet
type pressedDrag struct {
	insideThumb bool
	anchor      geometry.Point
}

// draggingDrag is a press that has moved at least once from inside the thumb
type draggingDrag struct {
	insideThumb bool
	anchor      geometry.Point
}

func (idleDrag) isDragState()     {}
func (pressedDrag) isDragState()  {}
func (draggingDrag) isDragState() {}

// Phase names the current gesture variant for hosts and logs
type Phase string

// Phase values
const (
	PhaseIdle     Phase = "idle"
	PhasePressed  Phase = "pressed"
	PhaseDragging Phase = "dragging"
)

func phaseOf(d dragState) Phase {
	switch d.(type) {
	case pressedDrag:
		return PhasePressed
	case draggingDrag:
		return PhaseDragging
	default:
		return PhaseIdle
	}
}
