package widget

import (
	"image"

	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/mathutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Thumb overlaid on the scrollbox frame. The scrollbox decides its state, the
// thumb only applies it, draws, and reports presses.
type ScrollThumb struct {
	ENode
	Axis Axis

	state  ThumbState
	inside bool
	sb     *ScrollBox
	ctx    ImageContext
}

func newScrollThumb(ctx ImageContext, sb *ScrollBox, axis Axis) *ScrollThumb {
	t := &ScrollThumb{ctx: ctx, sb: sb, Axis: axis}
	t.Cursor = event.PointerCursor
	if axis == HorizontalAxis {
		t.SetThemeClass("thumbHorizontal")
	} else {
		t.SetThemeClass("thumbVertical")
	}
	return t
}

func (t *ScrollThumb) State() ThumbState {
	return t.state
}

//----------

// The only place where a computed thumb state reaches the node.
func (t *ScrollThumb) applyState(st ThumbState) {
	if st == t.state && t.Bounds == t.stateBounds(st) {
		return
	}
	t.state = st
	t.Bounds = t.stateBounds(st)
	// the thumb moved over the content, repaint the whole frame
	t.sb.MarkNeedsPaint()
}

// Rectangle inside the scrollbox frame. A hidden thumb has the dimension
// along its axis set to zero.
func (t *ScrollThumb) stateBounds(st ThumbState) image.Rectangle {
	fr := t.sb.Bounds
	size := t.sb.ThumbSize
	length := 0
	if st.Visible {
		length = mathutil.RoundInt(st.Length)
	}
	pos := mathutil.RoundInt(st.Position)

	var r image.Rectangle
	if t.Axis == HorizontalAxis {
		r.Min = image.Point{fr.Min.X + pos, fr.Max.Y - size}
		r.Max = image.Point{r.Min.X + length, fr.Max.Y}
	} else {
		r.Min = image.Point{fr.Max.X - size, fr.Min.Y + pos}
		r.Max = image.Point{fr.Max.X, r.Min.Y + length}
	}
	return r
}

//----------

func (t *ScrollThumb) Paint() {
	name := "bg"
	if t.sb.drag.Dragging(t.Axis) {
		name = "drag_bg"
	} else if t.inside {
		name = "hover_bg"
	}
	c := t.TreeThemePaletteColor(name)
	img := imageutil.SubImage(t.ctx.Image(), t.VisibleBounds())
	imageutil.FillRectangle(img, t.Bounds, c)
}

func (t *ScrollThumb) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseEnter:
		t.inside = true
		t.MarkNeedsPaint()
	case *event.MouseLeave:
		t.inside = false
		t.MarkNeedsPaint()
	case *event.MouseDown:
		if evt.Button == event.ButtonLeft {
			if t.sb.startDrag(t.Axis, evt.Point) {
				return event.Handled
			}
		}
	}
	return event.NotHandled
}
