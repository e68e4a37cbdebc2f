package widget

import "image"

// Drag session of a thumb: idle, or dragging an axis with the pointer origin
// and the scroll offset snapshot taken at the start. One session per
// scrollbox, only one axis dragged at a time.
type ThumbDrag struct {
	active   bool
	axis     Axis
	origin   int     // pointer coordinate along the axis
	snapshot float64 // scroll offset along the axis
}

// Returns false if a session is already active, in which case the current
// origin and snapshot are kept.
func (d *ThumbDrag) Start(axis Axis, p image.Point, snapshot float64) bool {
	if d.active {
		return false
	}
	d.active = true
	d.axis = axis
	d.origin = axis.Coord(p)
	d.snapshot = snapshot
	return true
}

// Returns true if a session was active. The snapshot is not reset, the next
// start overwrites it.
func (d *ThumbDrag) Stop() bool {
	was := d.active
	d.active = false
	return was
}

func (d *ThumbDrag) Active() bool {
	return d.active
}

func (d *ThumbDrag) Dragging(axis Axis) bool {
	return d.active && d.axis == axis
}

// Scroll offset for the pointer at p. Not ok if the axis is not being dragged.
func (d *ThumbDrag) ScrollOffset(axis Axis, p image.Point, content, viewport float64) (float64, bool) {
	if !d.Dragging(axis) {
		return 0, false
	}
	diff := float64(axis.Coord(p) - d.origin)
	return d.snapshot + ScrollEquivalent(diff, content, viewport), true
}
