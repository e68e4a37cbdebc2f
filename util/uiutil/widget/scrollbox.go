package widget

import (
	"image"
	"image/color"

	"github.com/jmigpin/scrollbox/util/evreg"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Scrollable frame with custom thumbs.
//
// The wrapper scrolls natively (wheel) and owns the scroll offset. The thumbs
// are overlaid at the right/bottom edges and only mirror the offset: their
// length is the visible ratio of the content, their position the projected
// offset. Dragging a thumb maps the pointer displacement back into an offset.
//
// Listeners are attached on Mount and released on Unmount. The drag
// listeners are window-wide (the pointer may leave the frame while dragging)
// and exist only while the respective thumb is visible.
type ScrollBox struct {
	ENode
	Scroll          *ScrollWrapper
	Content         Node
	ThumbVertical   *ScrollThumb
	ThumbHorizontal *ScrollThumb

	Background color.Color // overrides the "root_bg" palette color if set
	ThumbSize  int

	size image.Point // explicit size, zero values are unset

	ctx      Context
	drag     ThumbDrag
	mounted  bool
	mountUnr evreg.Unregister    // wrapper scroll, window resize
	dragUnr  [2]evreg.Unregister // indexed by axis: window mouse move/up
}

func NewScrollBox(ctx Context, content Node) *ScrollBox {
	sb := &ScrollBox{ctx: ctx, Content: content, ThumbSize: 10}
	sb.SetThemeClass("root")

	if content.Embed().ThemeClass() == "" {
		content.Embed().SetThemeClass("content")
	}
	sb.Scroll = NewScrollWrapper(ctx)
	sb.Scroll.Append(content)

	sb.ThumbVertical = newScrollThumb(ctx, sb, VerticalAxis)
	sb.ThumbHorizontal = newScrollThumb(ctx, sb, HorizontalAxis)

	// thumbs after the wrapper: painted on top, receive input first
	sb.Append(sb.Scroll, sb.ThumbVertical, sb.ThumbHorizontal)
	return sb
}

//----------

func (sb *ScrollBox) SetWidth(w int) {
	sb.size.X = w
	sb.MarkNeedsLayout()
}

func (sb *ScrollBox) SetHeight(h int) {
	sb.size.Y = h
	sb.MarkNeedsLayout()
}

func (sb *ScrollBox) Measure(hint image.Point) image.Point {
	m := hint
	if sb.size.X > 0 {
		m.X = sb.size.X
	}
	if sb.size.Y > 0 {
		m.Y = sb.size.Y
	}
	return m
}

//----------

func (sb *ScrollBox) Thumb(axis Axis) *ScrollThumb {
	if axis == HorizontalAxis {
		return sb.ThumbHorizontal
	}
	return sb.ThumbVertical
}

// The axis is no longer managed: no thumb, no drag listeners.
func (sb *ScrollBox) RemoveThumb(axis Axis) {
	t := sb.Thumb(axis)
	if t == nil {
		return
	}
	sb.detachDrag(axis)
	if sb.drag.Dragging(axis) {
		sb.stopDrag()
	}
	sb.Remove(t)
	if axis == HorizontalAxis {
		sb.ThumbHorizontal = nil
	} else {
		sb.ThumbVertical = nil
	}
}

//----------

// Attaches the wrapper scroll and window resize listeners, and sizes the
// thumbs if already laid out. Calling it again has no effect.
func (sb *ScrollBox) Mount() {
	if sb.mounted {
		return
	}
	sb.mounted = true
	sb.mountUnr.Add(
		sb.Scroll.EvReg.Add(ScrollEvId, sb.onWrapperScroll),
		sb.ctx.EvReg().Add(event.WindowResizeEvId, sb.onWindowResize),
	)
	for _, a := range axes {
		sb.UpdateAxis(a)
	}
}

// Releases every listener attached by the scrollbox and ends a drag in
// progress.
func (sb *ScrollBox) Unmount() {
	if !sb.mounted {
		return
	}
	sb.mounted = false
	sb.mountUnr.UnregisterAll()
	for _, a := range axes {
		sb.detachDrag(a)
	}
	sb.stopDrag()
}

func (sb *ScrollBox) Mounted() bool {
	return sb.mounted
}

//----------

// Viewport and content extents along the axis. Not ok while unmounted or
// not laid out.
func (sb *ScrollBox) extents(axis Axis) (viewport, content float64, ok bool) {
	if !sb.mounted || sb.Bounds.Empty() || sb.Scroll.Bounds.Empty() {
		return 0, 0, false
	}
	viewport = float64(axis.Coord(sb.Bounds.Size()))
	content = float64(axis.Coord(sb.Scroll.ScrollSize()))
	return viewport, content, true
}

func (sb *ScrollBox) computeThumbLength(axis Axis) (float64, bool) {
	vp, ct, ok := sb.extents(axis)
	if !ok {
		return 0, false
	}
	if ct <= 0 {
		// nothing to scroll, same length as the viewport: hidden
		return vp, true
	}
	return ThumbLength(vp, ct)
}

// Measures the axis and shows or hides its thumb. A visible thumb gets its
// drag listeners attached (once).
func (sb *ScrollBox) UpdateAxis(axis Axis) {
	sb.updateAxis(axis, true)
}

func (sb *ScrollBox) updateAxis(axis Axis, attach bool) {
	t := sb.Thumb(axis)
	if t == nil {
		return
	}
	length, ok := sb.computeThumbLength(axis)
	if !ok {
		return
	}
	vp, ct, _ := sb.extents(axis)

	if ThumbVisible(length, vp) {
		off := sb.Scroll.ScrollOffset(axis)
		t.applyState(ThumbState{
			Length:   length,
			Position: ThumbPosition(off, ct, vp),
			Visible:  true,
		})
		if attach {
			sb.attachDrag(axis)
		}
		return
	}

	t.applyState(ThumbState{})
	sb.detachDrag(axis)
	if sb.drag.Dragging(axis) {
		sb.stopDrag()
	}
}

//----------

func (sb *ScrollBox) onWrapperScroll(ev0 interface{}) {
	ev := ev0.(*ScrollEvent)
	sb.projectAxis(VerticalAxis, ev.Top)
	sb.projectAxis(HorizontalAxis, ev.Left)
}

// Moves the thumb to mirror the offset. The length is left untouched.
func (sb *ScrollBox) projectAxis(axis Axis, offset float64) {
	t := sb.Thumb(axis)
	if t == nil {
		return
	}
	vp, ct, ok := sb.extents(axis)
	if !ok {
		return
	}
	st := t.State()
	st.Position = ThumbPosition(offset, ct, vp)
	t.applyState(st)
}

// Lengths only, no listeners are attached.
func (sb *ScrollBox) onWindowResize(ev interface{}) {
	for _, a := range axes {
		sb.updateAxis(a, false)
	}
}

//----------

func (sb *ScrollBox) attachDrag(axis Axis) {
	unr := &sb.dragUnr[axis]
	if unr.Len() > 0 {
		return // already attached
	}
	reg := sb.ctx.EvReg()
	unr.Add(
		reg.Add(event.MouseMoveEvId, func(ev interface{}) {
			sb.onDragMove(axis, ev.(*event.MouseMove))
		}),
		reg.Add(event.MouseUpEvId, func(ev interface{}) {
			sb.onDragEnd(axis)
		}),
	)
}

func (sb *ScrollBox) detachDrag(axis Axis) {
	sb.dragUnr[axis].UnregisterAll()
}

func (sb *ScrollBox) startDrag(axis Axis, p image.Point) bool {
	if !sb.mounted {
		return false
	}
	t := sb.Thumb(axis)
	if t == nil || !t.State().Visible {
		return false
	}
	if !sb.drag.Start(axis, p, sb.Scroll.ScrollOffset(axis)) {
		return false
	}
	// the thumb is the deepest node under the pointer, it needs the cursor too
	sb.Cursor = event.MoveCursor
	t.Cursor = event.MoveCursor
	sb.MarkNeedsPaint()
	return true
}

func (sb *ScrollBox) stopDrag() {
	if sb.drag.Stop() {
		sb.Cursor = event.NoneCursor
		for _, a := range axes {
			if t := sb.Thumb(a); t != nil {
				t.Cursor = event.PointerCursor
			}
		}
		sb.MarkNeedsPaint()
	}
}

func (sb *ScrollBox) onDragMove(axis Axis, ev *event.MouseMove) {
	vp, ct, ok := sb.extents(axis)
	if !ok {
		return
	}
	off, ok := sb.drag.ScrollOffset(axis, ev.Point, ct, vp)
	if !ok {
		return
	}
	// the wrapper clamps and emits, the projector moves the thumb
	sb.Scroll.SetScrollOffset(axis, off)
}

func (sb *ScrollBox) onDragEnd(axis Axis) {
	if sb.drag.Dragging(axis) {
		sb.stopDrag()
	}
}

//----------

func (sb *ScrollBox) Layout() {
	// content might have changed, measure again
	for _, a := range axes {
		sb.UpdateAxis(a)
	}
	// childs bounds were reset to the frame, restore the thumbs
	for _, a := range axes {
		if t := sb.Thumb(a); t != nil {
			t.Bounds = t.stateBounds(t.State())
		}
	}
}

func (sb *ScrollBox) OnChildMarked(child Node, newMarks Marks) {
	if child == Node(sb.Scroll) && newMarks.HasAny(MarkNeedsLayout|MarkChildNeedsLayout) {
		// thumbs need measuring
		sb.MarkNeedsLayout()
	}
}

func (sb *ScrollBox) Paint() {
	c := sb.Background
	if c == nil {
		c = sb.TreeThemePaletteColor("bg")
	}
	img := imageutil.SubImage(sb.ctx.Image(), sb.VisibleBounds())
	imageutil.FillRectangle(img, sb.Bounds, c)
}

func (sb *ScrollBox) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	if _, ok := ev.(*event.MouseEnter); ok {
		for _, a := range axes {
			sb.UpdateAxis(a)
		}
	}
	return event.NotHandled
}
