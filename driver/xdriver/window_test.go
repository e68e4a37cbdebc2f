package xdriver

import (
	"testing"
	"time"

	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

func TestWindowSendAfterClose(t *testing.T) {
	win := &Window{
		events: make(chan interface{}), // nobody reading
		done:   make(chan struct{}),
	}
	close(win.done)

	res := make(chan bool)
	go func() { res <- win.send(&event.WindowClose{}) }()
	select {
	case ok := <-res:
		if ok {
			t.Fatal("expecting send to fail")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("send blocked after close")
	}
}

func TestWindowSendDelivers(t *testing.T) {
	win := &Window{
		events: make(chan interface{}, 1),
		done:   make(chan struct{}),
	}
	if !win.send(&event.WindowExpose{}) {
		t.Fatal("expecting send")
	}
	if _, ok := win.NextEvent().(*event.WindowExpose); !ok {
		t.Fatal("expecting expose")
	}
}
