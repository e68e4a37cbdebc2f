package widget

import (
	"image"
	"testing"
)

func TestThumbDragOffset(t *testing.T) {
	var d ThumbDrag
	if !d.Start(VerticalAxis, image.Point{0, 50}, 100) {
		t.Fatal("expecting start")
	}
	off, ok := d.ScrollOffset(VerticalAxis, image.Point{999, 60}, 900, 300)
	if !ok || off != 130 {
		t.Fatal(off, ok)
	}
	// other axis is not being dragged
	if _, ok := d.ScrollOffset(HorizontalAxis, image.Point{60, 60}, 900, 300); ok {
		t.Fatal("horizontal axis should not be dragging")
	}
}

func TestThumbDragReentry(t *testing.T) {
	var d ThumbDrag
	d.Start(VerticalAxis, image.Point{0, 50}, 100)
	if d.Start(HorizontalAxis, image.Point{10, 80}, 400) {
		t.Fatal("second start should be ignored")
	}
	if !d.Dragging(VerticalAxis) || d.Dragging(HorizontalAxis) {
		t.Fatal("axis changed")
	}
	off, _ := d.ScrollOffset(VerticalAxis, image.Point{0, 70}, 900, 300)
	if off != 160 {
		t.Fatal(off)
	}
}

func TestThumbDragStopIdle(t *testing.T) {
	var d ThumbDrag
	if d.Stop() {
		t.Fatal("stop while idle")
	}
	if d.Active() {
		t.Fatal("active")
	}
	d.Start(HorizontalAxis, image.Point{5, 0}, 0)
	if !d.Stop() || d.Active() {
		t.Fatal("expecting stopped")
	}
	if _, ok := d.ScrollOffset(HorizontalAxis, image.Point{9, 0}, 900, 300); ok {
		t.Fatal("offset after stop")
	}
}
