package toggle

// Side identifies which label the thumb rests under
type Side int

// Side values
const (
	Left Side = iota
	Right
)

// SideFromBool maps the external "right selected" flag onto a Side
func SideFromBool(rightSelected bool) Side {
	if rightSelected {
		return Right
	}

	return Left
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == Right {
		return Left
	}

	return Right
}

// String returns a string representation of the side
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
