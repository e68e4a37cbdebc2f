package widget

import (
	"image/draw"

	"github.com/jmigpin/scrollbox/util/evreg"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

type ImageContext interface {
	Image() draw.Image
}
type CursorContext interface {
	SetCursor(event.Cursor)
}

// Window-wide listeners. Events outside a node bounds (ex: mouse move/up
// while dragging) and window resizes are emitted here with the event ids
// defined in the event pkg.
type EvRegContext interface {
	EvReg() *evreg.Register
}

type Context interface {
	ImageContext
	EvRegContext
}
