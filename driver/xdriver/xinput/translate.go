package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

var keyModifiersMasks = []struct {
	mask uint16
	mod  event.KeyModifiers
}{
	{xproto.KeyButMaskShift, event.ModShift},
	{xproto.KeyButMaskControl, event.ModCtrl},
	{xproto.KeyButMaskLock, event.ModLock},
	{xproto.KeyButMaskMod1, event.Mod1},
	{xproto.KeyButMaskMod2, event.Mod2},
	{xproto.KeyButMaskMod3, event.Mod3},
	{xproto.KeyButMaskMod4, event.Mod4},
	{xproto.KeyButMaskMod5, event.Mod5},
}

var buttonsMasks = []struct {
	mask   uint16
	button event.MouseButton
}{
	{xproto.KeyButMaskButton1, event.ButtonLeft},
	{xproto.KeyButMaskButton2, event.ButtonMiddle},
	{xproto.KeyButMaskButton3, event.ButtonRight},
	{xproto.KeyButMaskButton4, event.ButtonWheelUp},
	{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	{xproto.KeyButMaskButton5 << 1, event.ButtonWheelLeft},
	{xproto.KeyButMaskButton5 << 2, event.ButtonWheelRight},
	{xproto.KeyButMaskButton5 << 3, event.ButtonBackward},
	// the state is an uint16, no room for the forward button
}

// Indexed by the x button number.
var buttons = [...]event.MouseButton{
	1: event.ButtonLeft,
	2: event.ButtonMiddle,
	3: event.ButtonRight,
	4: event.ButtonWheelUp,
	5: event.ButtonWheelDown,
	6: event.ButtonWheelLeft,
	7: event.ButtonWheelRight,
	8: event.ButtonBackward,
	9: event.ButtonForward,
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	var w event.KeyModifiers
	for _, p := range keyModifiersMasks {
		if v&p.mask > 0 {
			w |= p.mod
		}
	}
	return w
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	var w event.MouseButtons
	for _, p := range buttonsMasks {
		if v&p.mask > 0 {
			w |= event.MouseButtons(p.button)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	if int(xb) < len(buttons) {
		return buttons[xb]
	}
	return event.ButtonNone
}
