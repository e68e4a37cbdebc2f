package xdriver

import (
	"image"
	"image/draw"
	"log"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/driver/xdriver/wimage"
	"github.com/jmigpin/scrollbox/driver/xdriver/wmprotocols"
	"github.com/jmigpin/scrollbox/driver/xdriver/xcursors"
	"github.com/jmigpin/scrollbox/driver/xdriver/xinput"
	"github.com/jmigpin/scrollbox/driver/xdriver/xutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
	"github.com/pkg/errors"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	Wmp     *wmprotocols.WMP
	WImg    wimage.WImage

	closeOnce sync.Once
	events    chan interface{}
	done      chan struct{} // closed on Close(), unblocks senders
}

func NewWindow() (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		events: make(chan interface{}, 8),
		done:   make(chan struct{}),
	}

	if err := win.initialize(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize() error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskEnterWindow |
		xproto.EventMaskLeaveWindow |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{0xffffffff, evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 500, 500,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	if err := xutil.LoadAtoms(win.Conn, &atoms, false); err != nil {
		return err
	}

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)

	opt := &wimage.Options{
		Conn:       win.Conn,
		Window:     win.Window,
		ScreenInfo: win.Screen,
		GCtx:       win.GCtx,
	}
	img, err := wimage.NewWImage(opt)
	if err != nil {
		return err
	}
	win.WImg = img

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	_ = xproto.MapWindow(win.Conn, win.Window)
	return nil
}

func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		close(win.done)
		err = win.WImg.Close()
		win.Conn.Close()
	})
	return err
}

//----------

func (win *Window) NextEvent() interface{} {
	return <-win.events
}

func (win *Window) eventLoop() {
	for {
		if !win.handleEvent() {
			return
		}
	}
}

// Doesn't block once the window is closed. Returns false in that case.
func (win *Window) send(ev interface{}) bool {
	select {
	case win.events <- ev:
		return true
	case <-win.done:
		return false
	}
}

// Returns false when no more events should be read: the connection is closed,
// or a WindowClose was emitted (the reader stops after it).
func (win *Window) handleEvent() bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		win.send(&event.WindowClose{})
		return false
	}
	if xerr != nil {
		if !win.send(error(xerr)) {
			return false
		}
	}
	if ev == nil {
		return true
	}

	var ev2 interface{}
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		// position is relative to the parent, the image starts at (0,0)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		ev2 = &event.WindowResize{Rect: r}
	case xproto.ExposeEvent: // region needs paint
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		ev2 = &event.WindowExpose{Rect: r}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
		// no op
	case shm.CompletionEvent:
		ev2 = &event.WindowPutImageDone{}

	case xproto.ButtonPressEvent:
		ev2 = xinput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		ev2 = xinput.ButtonRelease(&t)
	case xproto.MotionNotifyEvent:
		ev2 = xinput.MotionNotify(&t)
	case xproto.EnterNotifyEvent:
		ev2 = xinput.EnterNotify(&t)
	case xproto.LeaveNotifyEvent:
		ev2 = xinput.LeaveNotify(&t)

	case xproto.ClientMessageEvent:
		if win.Wmp.IsDeleteWindow(&t) {
			win.send(&event.WindowClose{})
			return false
		}
	default:
		log.Printf("unhandled event: %#v", ev)
	}
	if ev2 != nil {
		return win.send(ev2)
	}
	return true
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		atoms.NetWMName,  // property
		atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

// A WindowPutImageDone event is emitted when the server is done with the
// image.
func (win *Window) PutImage(r image.Rectangle) error {
	completed, err := win.WImg.PutImage(r)
	if err != nil {
		return err
	}
	if completed {
		// the ui goroutine is the one calling, don't block on the channel
		go win.send(&event.WindowPutImageDone{})
	}
	return nil
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetEventCursor(c); err != nil {
		log.Print(err)
	}
}

//----------

var atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
