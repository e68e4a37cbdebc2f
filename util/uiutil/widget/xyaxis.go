package widget

import "image"

type Axis int

const (
	VerticalAxis Axis = iota
	HorizontalAxis
)

var axes = [...]Axis{VerticalAxis, HorizontalAxis}

func (a Axis) String() string {
	if a == HorizontalAxis {
		return "horizontal"
	}
	return "vertical"
}

// Coordinate of p along the axis: Y for vertical, X for horizontal.
func (a Axis) Coord(p image.Point) int {
	if a == HorizontalAxis {
		return p.X
	}
	return p.Y
}
