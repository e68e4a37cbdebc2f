package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

type Window interface {
	NextEvent() interface{} // emits events from uiutil/event, or an error

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}
