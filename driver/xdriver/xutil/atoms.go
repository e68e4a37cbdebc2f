package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

// Fills the xproto.Atom fields of the struct pointed by st. Names come from
// the field name, or from a `loadAtoms:"atomname"` tag. The requests are
// all sent before reading the first reply.
func LoadAtoms(conn *xgb.Conn, st interface{}, onlyIfExists bool) error {
	val := reflect.Indirect(reflect.ValueOf(st))
	typ := val.Type()

	var cookies []xproto.InternAtomCookie
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		cookie := xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
		cookies = append(cookies, cookie)
	}

	for i, cookie := range cookies {
		reply, err := cookie.Reply()
		if err != nil {
			return errors.Wrapf(err, "atom %v", typ.Field(i).Name)
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}
