package widget

import (
	"image"

	"github.com/jmigpin/scrollbox/util/imageutil"
)

// Fixed size node filled with its "bg" palette color.
type Rectangle struct {
	ENode
	Size image.Point
	ctx  ImageContext
}

func NewRectangle(ctx ImageContext) *Rectangle {
	r := &Rectangle{ctx: ctx}
	return r
}

func (r *Rectangle) SetSize(size image.Point) {
	r.Size = size
	r.MarkNeedsLayoutAndPaint()
}

func (r *Rectangle) Measure(hint image.Point) image.Point {
	return r.Size
}

func (r *Rectangle) Paint() {
	c := r.TreeThemePaletteColor("bg")
	img := imageutil.SubImage(r.ctx.Image(), r.VisibleBounds())
	imageutil.FillRectangle(img, r.Bounds, c)
}
