package wmprotocols

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollbox/driver/xdriver/xutil"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

// Window manager protocols of a window. Only WM_DELETE_WINDOW is
// subscribed: closing the window sends a client message instead of killing
// the connection.
type WMP struct {
	conn *xgb.Conn
	win  xproto.Window
}

func NewWMP(conn *xgb.Conn, win xproto.Window) (*WMP, error) {
	if err := xutil.LoadAtoms(conn, &atoms, false); err != nil {
		return nil, err
	}
	wmp := &WMP{conn: conn, win: win}
	if err := wmp.subscribe(atoms.WM_DELETE_WINDOW); err != nil {
		return nil, errors.Wrap(err, "wmp")
	}
	return wmp, nil
}

// Appends protocol atoms to the window WM_PROTOCOLS property.
func (wmp *WMP) subscribe(protos ...xproto.Atom) error {
	data := make([]byte, 4*len(protos))
	for i, a := range protos {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(a))
	}
	cookie := xproto.ChangePropertyChecked(
		wmp.conn,
		xproto.PropModeAppend,
		wmp.win,
		atoms.WM_PROTOCOLS, // property
		xproto.AtomAtom,    // type
		32,                 // format
		uint32(len(protos)),
		data)
	return cookie.Check()
}

//----------

func (wmp *WMP) IsDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	return isProtocolMessage(ev, atoms.WM_DELETE_WINDOW)
}

func isProtocolMessage(ev *xproto.ClientMessageEvent, proto xproto.Atom) bool {
	if ev.Type != atoms.WM_PROTOCOLS || ev.Format != 32 {
		return false
	}
	// data[0] is the protocol, data[1] the timestamp
	return xproto.Atom(ev.Data.Data32[0]) == proto
}

var atoms struct {
	WM_PROTOCOLS     xproto.Atom
	WM_DELETE_WINDOW xproto.Atom
}
