package uiutil

import (
	"time"

	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Coalesces mouse move events to at most one per frame. The last kept move
// is sent before any other event to keep the order.
func MouseMoveFilterLoop(in <-chan interface{}, out chan<- interface{}, fps int) {
	f := &mouseMoveFilter{out: out, frameDur: time.Second / time.Duration(fps)}
	for {
		select {
		case ev, ok := <-in:
			if !ok {
				f.flush()
				return
			}
			if isMouseMove(ev) {
				f.keep(ev)
			} else {
				f.flush()
				out <- ev
			}
		case <-f.timeToSend:
			f.send()
		}
	}
}

func isMouseMove(ev interface{}) bool {
	wi, ok := ev.(*event.WindowInput)
	if !ok {
		return false
	}
	_, ok = wi.Event.(*event.MouseMove)
	return ok
}

//----------

type mouseMoveFilter struct {
	out        chan<- interface{}
	frameDur   time.Duration
	kept       interface{}
	timer      *time.Timer
	timeToSend <-chan time.Time
	lastSent   time.Time
}

func (f *mouseMoveFilter) keep(ev interface{}) {
	f.kept = ev
	if f.timer != nil {
		return // already scheduled
	}
	// send immediately if the frame duration already passed
	d := time.Since(f.lastSent)
	if d >= f.frameDur {
		f.lastSent = time.Now()
		f.kept = nil
		f.out <- ev
		return
	}
	f.timer = time.NewTimer(f.frameDur - d)
	f.timeToSend = f.timer.C
}

func (f *mouseMoveFilter) send() {
	f.timer.Stop()
	f.timer = nil
	f.timeToSend = nil
	f.lastSent = time.Now()
	ev := f.kept
	f.kept = nil
	f.out <- ev
}

func (f *mouseMoveFilter) flush() {
	if f.timer != nil {
		f.send()
	}
}
