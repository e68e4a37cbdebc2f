package evreg

import "container/list"

// The zero register is empty and ready for use.
type Register struct {
	m map[int]*list.List
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(interface{})) *Regist {
	return reg.AddCallback(evId, &Callback{fn})
}

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int]*list.List{}
	}
	l, ok := reg.m[evId]
	if !ok {
		l = list.New()
		reg.m[evId] = l
	}
	elem := l.PushBack(&entry{cb: cb})
	return &Regist{reg: reg, id: evId, elem: elem}
}

//----------

func (reg *Register) remove(evId int, elem *list.Element) {
	l, ok := reg.m[evId]
	if !ok {
		return
	}
	elem.Value.(*entry).removed = true
	l.Remove(elem)
	if l.Len() == 0 {
		delete(reg.m, evId)
	}
}

//----------

// Returns number of callbacks done. Callbacks can unregister themselves (or
// others) while running: a callback removed before its turn is not run.
// Callbacks added while running are only run on the next call.
func (reg *Register) RunCallbacks(evId int, ev interface{}) int {
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	w := make([]*entry, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		w = append(w, e.Value.(*entry))
	}
	c := 0
	for _, en := range w {
		if en.removed {
			continue
		}
		en.cb.F(ev)
		c++
	}
	return c
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	l, ok := reg.m[evId]
	if !ok {
		return 0
	}
	return l.Len()
}

// Number of registered callbacks for all event ids.
func (reg *Register) NCallbacksAll() int {
	n := 0
	for _, l := range reg.m {
		n += l.Len()
	}
	return n
}

//----------

type Callback struct {
	F func(ev interface{})
}

type entry struct {
	cb      *Callback
	removed bool
}

//----------

type Regist struct {
	reg  *Register
	id   int
	elem *list.Element
}

// Safe to call more than once.
func (r *Regist) Unregister() {
	if r == nil || r.elem == nil {
		return
	}
	r.reg.remove(r.id, r.elem)
	r.elem = nil
}

//----------

// Utility to unregister big number of regists.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
func (unr *Unregister) Len() int {
	return len(unr.v)
}
