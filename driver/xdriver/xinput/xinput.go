package xinput

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Pointer events only: the scrollbox takes no keyboard input.

func ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func EnterNotify(ev *xproto.EnterNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

// The point is outside any node bounds so the tree gets its leave events.
func LeaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	p := image.Point{-1, -1}
	return &event.WindowInput{Point: p, Event: &event.WindowLeave{}}
}
