package wimage

import (
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/pkg/errors"
)

// Sends the pixels inside the put image requests. Slower, but works with
// remote servers.
type CopyWImage struct {
	opt *Options
	img *imageutil.BGRA
}

func NewCopyWImage(opt *Options) (*CopyWImage, error) {
	wi := &CopyWImage{opt: opt}
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *CopyWImage) Close() error {
	wi.img = nil
	return nil
}

func (wi *CopyWImage) Resize(r image.Rectangle) error {
	wi.img = imageutil.NewBGRA(r)
	return nil
}

func (wi *CopyWImage) Image() draw.Image {
	return wi.img
}

func (wi *CopyWImage) PutImage(r image.Rectangle) (bool, error) {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return true, nil
	}

	// x max request length is (2^16)*4 bytes, send in chunks of lines
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxW := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxW {
		return false, errors.Errorf("copywimage: dx>max, %v>%v", r.Dx(), maxW)
	}
	chunkH := maxW / r.Dx()

	for y := r.Min.Y; y < r.Max.Y; y += chunkH {
		h := chunkH
		if y+h > r.Max.Y {
			h = r.Max.Y - y
		}
		rowLen := r.Dx() * 4
		data := make([]byte, rowLen*h)
		for k := 0; k < h; k++ {
			j := wi.img.PixOffset(r.Min.X, y+k)
			copy(data[k*rowLen:(k+1)*rowLen], wi.img.Pix[j:j+rowLen])
		}
		c := xproto.PutImageChecked(
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.opt.Window),
			wi.opt.GCtx,
			uint16(r.Dx()), uint16(h), // width/height
			int16(r.Min.X), int16(y), // dst x/y
			0, // left pad, must be 0 for ZPixmap format
			wi.opt.ScreenInfo.RootDepth,
			data)
		if err := c.Check(); err != nil {
			return false, errors.Wrap(err, "copywimage: put image")
		}
	}
	return true, nil
}
