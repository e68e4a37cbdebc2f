package widget

import (
	"image"
	"strings"

	"github.com/jmigpin/scrollbox/util/fontutil"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Read-only text lines. Measures to the longest line and the number of lines,
// so it can overflow a scrollbox in both axes.
type TextContent struct {
	ENode
	Pad int

	lines []string
	ff    *fontutil.FontFace
	ctx   ImageContext
}

func NewTextContent(ctx ImageContext, ff *fontutil.FontFace) *TextContent {
	tc := &TextContent{ctx: ctx, ff: ff, Pad: 4}
	return tc
}

func (tc *TextContent) SetText(s string) {
	s = strings.Replace(s, "\t", "    ", -1)
	tc.lines = strings.Split(s, "\n")
	tc.MarkNeedsLayoutAndPaint()
}

func (tc *TextContent) Text() string {
	return strings.Join(tc.lines, "\n")
}

func (tc *TextContent) LinesLen() int {
	return len(tc.lines)
}

//----------

func (tc *TextContent) Measure(hint image.Point) image.Point {
	w := 0
	for _, l := range tc.lines {
		if u := tc.ff.MeasureString(l); u > w {
			w = u
		}
	}
	h := len(tc.lines) * tc.ff.LineHeightInt()
	return image.Point{w + 2*tc.Pad, h + 2*tc.Pad}
}

func (tc *TextContent) Paint() {
	vis := tc.VisibleBounds()
	if vis.Empty() {
		return
	}
	img := imageutil.SubImage(tc.ctx.Image(), vis)

	if c, ok := tc.ClassPaletteColor("bg"); ok {
		imageutil.FillRectangle(img, vis, c)
	}

	fg := tc.TreeThemePaletteColor("fg")
	d := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: tc.ff.Face}

	// draw only the lines that intersect the visible area
	lh := tc.ff.LineHeightInt()
	top := tc.Bounds.Min.Y + tc.Pad
	first := 0
	if vis.Min.Y > top {
		first = (vis.Min.Y - top) / lh
	}
	for i := first; i < len(tc.lines); i++ {
		y := top + i*lh
		if y >= vis.Max.Y {
			break
		}
		d.Dot = fixed.P(tc.Bounds.Min.X+tc.Pad, y+tc.ff.BaseLineInt())
		d.DrawString(tc.lines[i])
	}
}
