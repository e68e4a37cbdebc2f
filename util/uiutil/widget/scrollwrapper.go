package widget

import (
	"image"

	"github.com/jmigpin/scrollbox/util/evreg"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/mathutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Event ids emitted by ScrollWrapper.EvReg.
const (
	ScrollEvId = iota + 1 // callback receives *ScrollEvent
)

type ScrollEvent struct {
	Top, Left float64
}

//----------

// The natively scrolling node. Holds the scroll offset (the ground truth)
// and positions its single child (the content) accordingly.
type ScrollWrapper struct {
	ENode
	EvReg     evreg.Register
	WheelStep int

	offset [2]float64 // indexed by axis
	ctx    ImageContext
}

func NewScrollWrapper(ctx ImageContext) *ScrollWrapper {
	sw := &ScrollWrapper{ctx: ctx, WheelStep: 40}
	sw.SetThemeClass("wrapper")
	return sw
}

//----------

func (sw *ScrollWrapper) content() Node {
	return sw.FirstChildWrapper()
}

func (sw *ScrollWrapper) ViewSize() image.Point {
	return sw.Bounds.Size()
}

// Content extent, measured at call time. Never smaller than the view size.
func (sw *ScrollWrapper) ScrollSize() image.Point {
	vs := sw.ViewSize()
	c := sw.content()
	if c == nil {
		return vs
	}
	m := c.Measure(vs)
	return image.Point{mathutil.Biggest(m.X, vs.X), mathutil.Biggest(m.Y, vs.Y)}
}

func (sw *ScrollWrapper) MaxScrollOffset(axis Axis) float64 {
	ss := sw.ScrollSize()
	vs := sw.ViewSize()
	return float64(axis.Coord(ss) - axis.Coord(vs))
}

func (sw *ScrollWrapper) ScrollOffset(axis Axis) float64 {
	return sw.offset[axis]
}

// The offset is clamped to the scrollable range. Emits ScrollEvId if it changed.
func (sw *ScrollWrapper) SetScrollOffset(axis Axis, v float64) {
	if sw.setOffset(axis, v) {
		sw.MarkNeedsLayoutAndPaint()
		sw.emitScroll()
	}
}

func (sw *ScrollWrapper) setOffset(axis Axis, v float64) bool {
	if !mathutil.IsFinite(v) {
		return false
	}
	v = mathutil.LimitFloat64(v, 0, sw.MaxScrollOffset(axis))
	if v == sw.offset[axis] {
		return false
	}
	sw.offset[axis] = v
	return true
}

func (sw *ScrollWrapper) emitScroll() {
	ev := &ScrollEvent{
		Top:  sw.offset[VerticalAxis],
		Left: sw.offset[HorizontalAxis],
	}
	sw.EvReg.RunCallbacks(ScrollEvId, ev)
}

//----------

func (sw *ScrollWrapper) Layout() {
	// content or view size might have changed, keep the offset in range
	changed := false
	for _, a := range axes {
		if sw.setOffset(a, sw.offset[a]) {
			changed = true
		}
	}
	if changed {
		sw.emitScroll()
	}

	c := sw.content()
	if c == nil {
		return
	}
	off := image.Point{
		mathutil.RoundInt(sw.offset[HorizontalAxis]),
		mathutil.RoundInt(sw.offset[VerticalAxis]),
	}
	min := sw.Bounds.Min.Sub(off)
	c.Embed().Bounds = image.Rectangle{min, min.Add(sw.ScrollSize())}
}

func (sw *ScrollWrapper) OnChildMarked(child Node, newMarks Marks) {
	// content size might have changed
	if newMarks.HasAny(MarkNeedsLayout | MarkChildNeedsLayout) {
		sw.MarkNeedsLayout()
	}
}

func (sw *ScrollWrapper) Paint() {
	if c, ok := sw.ClassPaletteColor("bg"); ok {
		imageutil.FillRectangle(sw.ctx.Image(), sw.Bounds, c)
	}
}

//----------

func (sw *ScrollWrapper) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	if evt, ok := ev.(*event.MouseDown); ok {
		return sw.scrollWheel(evt)
	}
	return event.NotHandled
}

func (sw *ScrollWrapper) scrollWheel(ev *event.MouseDown) event.Handle {
	dx, dy, ok := ev.Button.WheelDelta()
	if !ok {
		return event.NotHandled
	}
	axis := VerticalAxis
	step := float64(dy * sw.WheelStep)
	if dx != 0 {
		axis = HorizontalAxis
		step = float64(dx * sw.WheelStep)
	}
	if axis == VerticalAxis && ev.Mods.HasAny(event.ModShift) {
		axis = HorizontalAxis
	}
	old := sw.offset[axis]
	sw.SetScrollOffset(axis, old+step)
	return event.Handle(sw.offset[axis] != old)
}
