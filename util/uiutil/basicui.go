package uiutil

import (
	"image"
	"image/draw"
	"log"
	"time"

	"github.com/jmigpin/scrollbox/driver"
	"github.com/jmigpin/scrollbox/util/evreg"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
	"github.com/jmigpin/scrollbox/util/uiutil/widget"
)

// Connects a window to a node tree. Implements widget.Context and
// widget.CursorContext. All methods are expected to run in the goroutine
// reading the events channel.
type BasicUI struct {
	DrawFrameRate int // frames per second
	RootNode      widget.Node
	Win           driver.Window
	ApplyEv       *widget.ApplyEvent

	events          chan interface{}
	evReg           evreg.Register // window-wide listeners
	lastPaint       time.Time
	incompleteDraws int
	curCursor       event.Cursor
}

func NewBasicUI(events chan interface{}, win driver.Window, winName string) *BasicUI {
	ui := &BasicUI{
		DrawFrameRate: 37,
		Win:           win,
		events:        events,
	}
	ui.ApplyEv = widget.NewApplyEvent(ui)
	win.SetWindowName(winName)
	return ui
}

// Window events go through a mouse move filter before reaching the events
// channel.
func (ui *BasicUI) StartWindowEvents() {
	events2 := make(chan interface{}, cap(ui.events))
	go func() {
		defer close(events2)
		for {
			ev := ui.Win.NextEvent()
			events2 <- ev
			if _, ok := ev.(*event.WindowClose); ok {
				return
			}
		}
	}()
	go MouseMoveFilterLoop(events2, ui.events, ui.DrawFrameRate)
}

func (ui *BasicUI) SetRootNode(n widget.Node) {
	ui.RootNode = n
	n.Embed().SetWrapperForRoot(n)
}

func (ui *BasicUI) Close() {
	if err := ui.Win.Close(); err != nil {
		log.Println(err)
	}
}

//----------

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowResize:
		ui.resize(t)
	case *event.WindowExpose:
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.ApplyEv.Apply(ui.RootNode, t.Event, t.Point)
		ui.runWindowInputCallbacks(t.Event)
	case *event.WindowPutImageDone:
		ui.incompleteDraws--
	case *UIRunFuncEvent:
		t.Func()
	case error:
		log.Println(t)
	case struct{}:
		// no op
	default:
		log.Printf("unhandled event: %#v", ev)
	}
}

func (ui *BasicUI) resize(ev *event.WindowResize) {
	if err := ui.Win.ResizeImage(ev.Rect); err != nil {
		log.Println(err)
		return
	}
	en := ui.RootNode.Embed()
	if en.Bounds != ev.Rect {
		en.Bounds = ev.Rect
		ui.RootNode.LayoutTree()
		en.MarkNeedsPaint()
	}
	ui.evReg.RunCallbacks(event.WindowResizeEvId, ev)
}

// Events that listeners need even if outside their node bounds.
func (ui *BasicUI) runWindowInputCallbacks(ev interface{}) {
	switch ev.(type) {
	case *event.MouseMove:
		ui.evReg.RunCallbacks(event.MouseMoveEvId, ev)
	case *event.MouseUp:
		ui.evReg.RunCallbacks(event.MouseUpEvId, ev)
	}
}

//----------

// Should be called in the event loop after every event.
func (ui *BasicUI) PaintIfTime() {
	now := time.Now()
	d := now.Sub(ui.lastPaint)
	if d > time.Second/time.Duration(ui.DrawFrameRate) {
		if ui.paintIfNeeded() {
			ui.lastPaint = now
		}
		return
	}
	if len(ui.events) == 0 && ui.RootNode.Embed().TreeNeedsPaint() {
		// Didn't paint to avoid high fps. Ensure the loop iterates again.
		ui.EnqueueNoOpEvent()
	}
}

func (ui *BasicUI) paintIfNeeded() bool {
	// still drawing, should be called again on the put image done event
	if ui.incompleteDraws != 0 {
		return false
	}
	ui.RootNode.LayoutMarked()
	r := ui.RootNode.PaintMarked()
	if r.Empty() {
		return false
	}
	ui.putImage(r)
	return true
}

func (ui *BasicUI) putImage(r image.Rectangle) {
	ui.incompleteDraws++
	if err := ui.Win.PutImage(r); err != nil {
		ui.incompleteDraws--
		log.Println(err)
	}
}

func (ui *BasicUI) EnqueueNoOpEvent() {
	go func() { ui.events <- struct{}{} }()
}

func (ui *BasicUI) RunOnUIThread(f func()) {
	ui.events <- &UIRunFuncEvent{f}
}

//----------

// Implements widget.ImageContext.
func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.EvRegContext.
func (ui *BasicUI) EvReg() *evreg.Register {
	return &ui.evReg
}

// Implements widget.CursorContext.
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

//----------

type UIRunFuncEvent struct {
	Func func()
}
