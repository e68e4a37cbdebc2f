package wimage

import (
	"image"
	"image/draw"
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Window image for drawing.
type WImage interface {
	Image() draw.Image
	// Not completed means the server will notify the completion later.
	PutImage(image.Rectangle) (completed bool, _ error)
	Resize(image.Rectangle) error
	Close() error
}

func NewWImage(opt *Options) (WImage, error) {
	// image using shared memory (better performance)
	wimg, err := NewShmWImage(opt)
	if err == nil {
		return wimg, nil
	}
	log.Printf("warning: unable to use shm image: %v", err)

	// fallback: send the image data in the requests
	return NewCopyWImage(opt)
}

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}
