package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

func newTestWrapper(view, content image.Point) (*ScrollWrapper, *Rectangle) {
	ctx := newTestCtx(image.Rectangle{Max: view})
	r := NewRectangle(ctx)
	r.Size = content
	sw := NewScrollWrapper(ctx)
	sw.Append(r)
	sw.SetWrapperForRoot(sw)
	sw.Bounds = image.Rectangle{Max: view}
	sw.LayoutTree()
	return sw, r
}

func TestScrollWrapperClamp(t *testing.T) {
	sw, _ := newTestWrapper(pt(200, 300), pt(500, 900))
	if m := sw.MaxScrollOffset(VerticalAxis); m != 600 {
		t.Fatal(m)
	}
	if m := sw.MaxScrollOffset(HorizontalAxis); m != 300 {
		t.Fatal(m)
	}
	sw.SetScrollOffset(VerticalAxis, 1000)
	if o := sw.ScrollOffset(VerticalAxis); o != 600 {
		t.Fatal(o)
	}
	sw.SetScrollOffset(HorizontalAxis, -5)
	if o := sw.ScrollOffset(HorizontalAxis); o != 0 {
		t.Fatal(o)
	}
}

func TestScrollWrapperEmit(t *testing.T) {
	sw, _ := newTestWrapper(pt(200, 300), pt(500, 900))
	var evs []ScrollEvent
	sw.EvReg.Add(ScrollEvId, func(ev interface{}) {
		evs = append(evs, *ev.(*ScrollEvent))
	})

	sw.SetScrollOffset(VerticalAxis, 50)
	sw.SetScrollOffset(VerticalAxis, 50) // no change, no event
	sw.SetScrollOffset(HorizontalAxis, 20)
	if len(evs) != 2 {
		t.Fatal(evs)
	}
	if evs[1] != (ScrollEvent{Top: 50, Left: 20}) {
		t.Fatal(evs)
	}
}

func TestScrollWrapperLayout(t *testing.T) {
	sw, r := newTestWrapper(pt(200, 300), pt(500, 900))
	sw.SetScrollOffset(VerticalAxis, 100)
	sw.SetScrollOffset(HorizontalAxis, 30)
	sw.LayoutMarked()
	if r.Bounds != image.Rect(-30, -100, 470, 800) {
		t.Fatal(r.Bounds)
	}

	// content shrinks, offset is clamped and emitted on layout
	n := 0
	sw.EvReg.Add(ScrollEvId, func(interface{}) { n++ })
	r.SetSize(pt(100, 350))
	sw.LayoutMarked()
	if o := sw.ScrollOffset(VerticalAxis); o != 50 {
		t.Fatal(o)
	}
	if o := sw.ScrollOffset(HorizontalAxis); o != 0 {
		t.Fatal(o)
	}
	if n != 1 {
		t.Fatal(n)
	}
	// content is at least the view size
	if r.Bounds != image.Rect(0, -50, 200, 300) {
		t.Fatal(r.Bounds)
	}
}

func TestScrollWrapperShiftWheel(t *testing.T) {
	sw, _ := newTestWrapper(pt(200, 300), pt(500, 900))
	h := sw.OnInputEvent(&event.MouseDown{Button: event.ButtonWheelDown, Mods: event.ModShift}, pt(1, 1))
	if h != event.Handled {
		t.Fatal(h)
	}
	if o := sw.ScrollOffset(HorizontalAxis); o != 40 {
		t.Fatal(o)
	}
	if o := sw.ScrollOffset(VerticalAxis); o != 0 {
		t.Fatal(o)
	}
	h = sw.OnInputEvent(&event.MouseDown{Button: event.ButtonLeft}, pt(1, 1))
	if h != event.NotHandled {
		t.Fatal(h)
	}
}
