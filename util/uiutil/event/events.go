package event

import "image"

//----------

type WindowClose struct{}
type WindowPutImageDone struct{}
type WindowExpose struct {
	Rect image.Rectangle
}
type WindowResize struct {
	Rect image.Rectangle
}
type WindowInput struct {
	Point image.Point
	Event interface{}
}

// Pointer left the window. Not a mouse move: window-wide move listeners
// (ex: a thumb drag) don't see it.
type WindowLeave struct{}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	Mod1 // ~ alt
	Mod2 // ~ num lock
	Mod3
	Mod4 // ~ windows key
	Mod5 // ~ alt gr
)

//----------

// Ids for listeners registered in a window-wide evreg.Register. Callbacks
// receive the event value, ex: MouseMoveEvId receives a *MouseMove.
const (
	MouseMoveEvId = iota + 1
	MouseUpEvId
	WindowResizeEvId
)
