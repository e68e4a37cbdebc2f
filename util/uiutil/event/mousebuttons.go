package event

// Single bit values: MouseButtons holds the set of pressed buttons.
type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
	ButtonBackward
	ButtonForward
)

// Direction of a wheel button along x or y: -1 towards the origin, 1 away.
func (b MouseButton) WheelDelta() (dx, dy int, ok bool) {
	switch b {
	case ButtonWheelUp:
		return 0, -1, true
	case ButtonWheelDown:
		return 0, 1, true
	case ButtonWheelLeft:
		return -1, 0, true
	case ButtonWheelRight:
		return 1, 0, true
	}
	return 0, 0, false
}

//----------

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) != 0
}
