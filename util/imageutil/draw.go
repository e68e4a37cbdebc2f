package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

func DrawMask(
	dst draw.Image,
	r image.Rectangle,
	src image.Image, srcp image.Point,
	mask image.Image, maskp image.Point,
	op draw.Op,
) {
	// improve performance for bgra
	if bgra, ok := dst.(*BGRA); ok {
		dst = &bgra.RGBA
	}
	draw.DrawMask(dst, r, src, srcp, mask, maskp, op)
}

func DrawUniformMask(
	dst draw.Image,
	r image.Rectangle,
	c color.Color,
	mask image.Image, maskp image.Point,
	op draw.Op,
) {
	if c == nil {
		return
	}
	// correct color for bgra
	if _, ok := dst.(*BGRA); ok {
		c = BgraColor(c)
	}
	src := image.NewUniform(c)
	DrawMask(dst, r, src, image.Point{}, mask, maskp, op)
}

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	DrawUniformMask(dst, r, c, nil, image.Point{}, op)
}

//----------

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

//----------

// Returns an image restricted to r, sharing pixels with img. Returns img if it
// doesn't support sub images.
func SubImage(img draw.Image, r image.Rectangle) draw.Image {
	switch t := img.(type) {
	case *BGRA:
		return t.SubImage(r)
	case interface {
		SubImage(image.Rectangle) image.Image
	}:
		if u, ok := t.SubImage(r).(draw.Image); ok {
			return u
		}
	}
	return img
}
