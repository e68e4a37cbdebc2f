package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// RGBA image with the red and blue channels stored swapped, which is the
// layout of the X server 24/32 depth visuals. Colors in/out are plain RGBA.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r image.Rectangle) *BGRA {
	u := image.NewRGBA(r)
	return &BGRA{*u}
}

func NewBGRAFromBuffer(buf []byte, r image.Rectangle) *BGRA {
	rgba := image.RGBA{Pix: buf, Stride: 4 * r.Dx(), Rect: r}
	return &BGRA{RGBA: rgba}
}

func BGRASize(r image.Rectangle) int {
	return r.Dx() * r.Dy() * 4
}

//----------

func (img *BGRA) Set(x, y int, c color.Color) {
	img.SetRGBA(x, y, RgbaColor(c))
}

func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	img.RGBA.SetRGBA(x, y, swapRB(c))
}

func (img *BGRA) At(x, y int) color.Color {
	return swapRB(img.RGBA.RGBAAt(x, y))
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

//----------

func BgraColor(c color.Color) color.RGBA {
	return swapRB(RgbaColor(c))
}

func swapRB(c color.RGBA) color.RGBA {
	c.R, c.B = c.B, c.R
	return c
}
