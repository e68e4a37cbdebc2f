package uiutil

import (
	"image"
	"image/draw"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/driver/xdriver/xinput"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
	"github.com/jmigpin/scrollbox/util/uiutil/widget"
)

type fakeWindow struct {
	img     *imageutil.BGRA
	puts    []image.Rectangle
	cursors []event.Cursor
	name    string
}

func (w *fakeWindow) NextEvent() interface{}   { select {} }
func (w *fakeWindow) Close() error             { return nil }
func (w *fakeWindow) SetWindowName(s string)   { w.name = s }
func (w *fakeWindow) Image() draw.Image        { return w.img }
func (w *fakeWindow) SetCursor(c event.Cursor) { w.cursors = append(w.cursors, c) }
func (w *fakeWindow) PutImage(r image.Rectangle) error {
	w.puts = append(w.puts, r)
	return nil
}
func (w *fakeWindow) ResizeImage(r image.Rectangle) error {
	w.img = imageutil.NewBGRA(r)
	return nil
}

//----------

func newTestUI() (*BasicUI, *fakeWindow, *widget.ScrollBox) {
	win := &fakeWindow{img: imageutil.NewBGRA(image.Rect(0, 0, 1, 1))}
	ui := NewBasicUI(make(chan interface{}, 8), win, "test")
	r := widget.NewRectangle(ui)
	r.Size = image.Point{200, 900}
	sb := widget.NewScrollBox(ui, r)
	ui.SetRootNode(sb)
	sb.Mount()
	ui.HandleEvent(&event.WindowResize{Rect: image.Rect(0, 0, 200, 300)})
	return ui, win, sb
}

func TestBasicUIResize(t *testing.T) {
	ui, win, sb := newTestUI()
	if win.name != "test" {
		t.Fatal(win.name)
	}
	if win.img.Bounds() != image.Rect(0, 0, 200, 300) {
		t.Fatal(win.img.Bounds())
	}
	if !sb.ThumbVertical.State().Visible {
		t.Fatal("expecting visible thumb")
	}

	ui.HandleEvent(&event.WindowResize{Rect: image.Rect(0, 0, 200, 1000)})
	if sb.ThumbVertical.State().Visible {
		t.Fatal("expecting hidden thumb")
	}
}

func TestBasicUIDrag(t *testing.T) {
	ui, win, sb := newTestUI()

	input := func(ev interface{}, p image.Point) {
		ui.HandleEvent(&event.WindowInput{Point: p, Event: ev})
	}
	p := image.Point{195, 50}
	input(&event.MouseMove{Point: p}, p)
	input(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)

	// pointer leaves the frame while dragging
	p2 := image.Point{500, 60}
	input(&event.MouseMove{Point: p2}, p2)
	if o := sb.Scroll.ScrollOffset(widget.VerticalAxis); o != 30 {
		t.Fatal(o)
	}
	input(&event.MouseUp{Point: p2, Button: event.ButtonLeft}, p2)
	p3 := image.Point{500, 90}
	input(&event.MouseMove{Point: p3}, p3)
	if o := sb.Scroll.ScrollOffset(widget.VerticalAxis); o != 30 {
		t.Fatal(o)
	}

	if len(win.cursors) == 0 || win.cursors[0] != event.PointerCursor {
		t.Fatal(win.cursors)
	}
}

func TestBasicUIDragLeaveWindow(t *testing.T) {
	ui, _, sb := newTestUI()
	sb.Scroll.SetScrollOffset(widget.VerticalAxis, 300)

	input := func(ev interface{}, p image.Point) {
		ui.HandleEvent(&event.WindowInput{Point: p, Event: ev})
	}
	p := image.Point{195, 110}
	input(&event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	p2 := image.Point{195, 120}
	input(&event.MouseMove{Point: p2}, p2)
	if o := sb.Scroll.ScrollOffset(widget.VerticalAxis); o != 330 {
		t.Fatal(o)
	}
	if !sb.ThumbVertical.HasAnyMarks(widget.MarkPointerInside) {
		t.Fatal("expecting pointer inside thumb")
	}

	// crossing the right edge, y unchanged
	ui.HandleEvent(xinput.LeaveNotify(&xproto.LeaveNotifyEvent{
		EventX: 200, EventY: 120, State: xproto.KeyButMaskButton1,
	}))
	if o := sb.Scroll.ScrollOffset(widget.VerticalAxis); o != 330 {
		t.Fatal(o)
	}
	if sb.ThumbVertical.HasAnyMarks(widget.MarkPointerInside) {
		t.Fatal("expecting pointer outside thumb")
	}

	p3 := image.Point{200, 120}
	input(&event.MouseUp{Point: p3, Button: event.ButtonLeft}, p3)
	if o := sb.Scroll.ScrollOffset(widget.VerticalAxis); o != 330 {
		t.Fatal(o)
	}
}

func TestBasicUIPaint(t *testing.T) {
	ui, win, _ := newTestUI()

	if !ui.paintIfNeeded() {
		t.Fatal("expecting paint")
	}
	if len(win.puts) != 1 || win.puts[0] != image.Rect(0, 0, 200, 300) {
		t.Fatal(win.puts)
	}
	// waiting for the put image to complete
	ui.RootNode.Embed().MarkNeedsPaint()
	if ui.paintIfNeeded() {
		t.Fatal("painted before put image done")
	}
	ui.HandleEvent(&event.WindowPutImageDone{})
	if !ui.paintIfNeeded() {
		t.Fatal("expecting paint")
	}
	ui.HandleEvent(&event.WindowPutImageDone{})
	if ui.paintIfNeeded() {
		t.Fatal("nothing to paint")
	}
}

func TestBasicUIRunFunc(t *testing.T) {
	ui, _, _ := newTestUI()
	n := 0
	ui.HandleEvent(&UIRunFuncEvent{func() { n++ }})
	if n != 1 {
		t.Fatal(n)
	}
}
