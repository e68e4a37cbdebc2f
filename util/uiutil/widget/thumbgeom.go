package widget

import "github.com/jmigpin/scrollbox/util/mathutil"

// Room reserved at the end of the track so the thumb never overruns the edge.
const ThumbMargin = 5.0

// Size and position of a thumb along its axis, in pixels.
type ThumbState struct {
	Length   float64
	Position float64
	Visible  bool
}

//----------

// Thumb length from the ratio of the visible viewport to the content extent.
// Not ok if either extent is not positive (not measurable).
func ThumbLength(viewport, content float64) (float64, bool) {
	if viewport <= 0 || content <= 0 {
		return 0, false
	}
	visibleRatio := viewport / content
	return visibleRatio * viewport, true
}

// Visible iff the thumb is shorter than the viewport (content overflows).
func ThumbVisible(length, viewport float64) bool {
	if viewport <= 0 {
		return false
	}
	return length/viewport < 1
}

// Projects a scroll offset into a thumb position.
func ThumbPosition(offset, content, viewport float64) float64 {
	if content <= 0 {
		return 0
	}
	track := viewport - ThumbMargin
	if track < 0 {
		track = 0
	}
	pos := offset / content * track
	if !mathutil.IsFinite(pos) {
		return 0
	}
	return pos
}

// Inverse projection: pointer displacement into a scroll offset delta.
func ScrollEquivalent(delta, content, viewport float64) float64 {
	if viewport <= 0 {
		return 0
	}
	return delta * (content / viewport)
}

//----------

// Next thumb state from the measurements. Pure; applying it is up to the
// caller. A non-overflowing (or empty) content gives a hidden zero state.
func ComputeThumbState(viewport, content, offset float64) ThumbState {
	length, ok := ThumbLength(viewport, content)
	if !ok || !ThumbVisible(length, viewport) {
		return ThumbState{}
	}
	return ThumbState{
		Length:   length,
		Position: ThumbPosition(offset, content, viewport),
		Visible:  true,
	}
}
