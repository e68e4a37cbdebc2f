package widget

import (
	"image"

	"github.com/jmigpin/scrollbox/util/uiutil/event"
)

// Delivers window input events to the node tree: mouse enter/leave marks,
// depth first dispatch in reverse paint order, and the cursor of the deepest
// node under the pointer.
type ApplyEvent struct {
	cctx CursorContext
}

func NewApplyEvent(cctx CursorContext) *ApplyEvent {
	return &ApplyEvent{cctx: cctx}
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	ae.mouseEnterLeave(node, p)

	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.WindowLeave: // enter/leave marks only
	default:
		ae.depthFirstEv(node, evt, p)
	}

	ae.setCursor(node, p)
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	ae.cctx.SetCursor(ae.treeCursor(node, p))
}

func (ae *ApplyEvent) treeCursor(node Node, p image.Point) event.Cursor {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NoneCursor
	}
	c := event.NoneCursor
	ne.IterateWrappersReverse(func(child Node) bool {
		c = ae.treeCursor(child, p)
		return c == event.NoneCursor // continue while no cursor was set
	})
	if c == event.NoneCursor {
		c = ne.Cursor
	}
	return c
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node Node, p image.Point) {
	ae.mouseLeave(node, p) // run leave first
	ae.mouseEnter(node, p)
}

func (ae *ApplyEvent) mouseEnter(node Node, p image.Point) event.Handle {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseEnter(c, p)
		return h == event.NotHandled // continue while not handled
	})

	// execute on node
	if !h {
		if !ne.HasAnyMarks(MarkPointerInside) {
			ne.AddMarks(MarkPointerInside)
			h = node.OnInputEvent(&event.MouseEnter{}, p)
		}
	}
	return h
}

func (ae *ApplyEvent) mouseLeave(node Node, p image.Point) event.Handle {
	ne := node.Embed()

	// execute on childs
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseLeave(c, p)
		return h == event.NotHandled
	})

	// execute on node
	if !h {
		if ne.HasAnyMarks(MarkPointerInside) && !p.In(ne.Bounds) {
			ne.RemoveMarks(MarkPointerInside)
			h = node.OnInputEvent(&event.MouseLeave{}, p)
		}
	}
	return h
}

//----------

func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point) event.Handle {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, p)
		return h == event.NotHandled
	})

	// execute on node
	if !h {
		h = node.OnInputEvent(ev, p)
	}
	return h
}
