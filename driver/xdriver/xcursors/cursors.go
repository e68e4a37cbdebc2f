package xcursors

import (
	"image/color"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/xlib/appendix/b/

// Glyph index in the x "cursor" font (xcursor constants).
type Cursor uint16

// Resets to the parent window cursor. Value after the last x cursor (152).
const XCNone Cursor = 200

// Glyphs for the ui cursors.
var eventCursors = map[event.Cursor]Cursor{
	event.NoneCursor:     XCNone,
	event.DefaultCursor:  XCNone,
	event.PointerCursor:  xcursor.Hand2,
	event.MoveCursor:     xcursor.Fleur,
	event.NSResizeCursor: xcursor.SBVDoubleArrow,
	event.WEResizeCursor: xcursor.SBHDoubleArrow,
}

//----------

// Loaded cursors cache, set on the window.
type Cursors struct {
	conn *xgb.Conn
	win  xproto.Window
	m    map[Cursor]xproto.Cursor
}

func NewCursors(conn *xgb.Conn, win xproto.Window) *Cursors {
	return &Cursors{conn: conn, win: win, m: map[Cursor]xproto.Cursor{}}
}

func (cs *Cursors) SetEventCursor(c event.Cursor) error {
	xc, ok := eventCursors[c]
	if !ok {
		return errors.Errorf("xcursors: unknown cursor: %v", c)
	}
	return cs.SetCursor(xc)
}

func (cs *Cursors) SetCursor(c Cursor) error {
	xc, ok := cs.m[c]
	if !ok {
		u, err := cs.loadCursor(c, color.Black, color.White)
		if err != nil {
			return err
		}
		cs.m[c] = u
		xc = u
	}
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(xc)}
	_ = xproto.ChangeWindowAttributes(cs.conn, cs.win, mask, values)
	return nil
}

func (cs *Cursors) loadCursor(c Cursor, fg, bg color.Color) (xproto.Cursor, error) {
	if c == XCNone {
		return 0, nil
	}
	fontId, err := xproto.NewFontId(cs.conn)
	if err != nil {
		return 0, err
	}
	cursor, err := xproto.NewCursorId(cs.conn)
	if err != nil {
		return 0, err
	}
	name := "cursor"
	err = xproto.OpenFontChecked(cs.conn, fontId, uint16(len(name)), name).Check()
	if err != nil {
		return 0, errors.Wrap(err, "xcursors: open font")
	}

	ur, ug, ub, _ := imageutil.ColorUint16s(fg)
	vr, vg, vb, _ := imageutil.ColorUint16s(bg)

	// the mask glyph is the next one in the font
	err = xproto.CreateGlyphCursorChecked(
		cs.conn, cursor,
		fontId, fontId,
		uint16(c), uint16(c)+1,
		ur, ug, ub,
		vr, vg, vb).Check()
	if err != nil {
		return 0, errors.Wrap(err, "xcursors: create glyph cursor")
	}

	err = xproto.CloseFontChecked(cs.conn, fontId).Check()
	if err != nil {
		return 0, errors.Wrap(err, "xcursors: close font")
	}
	return cursor, nil
}
