package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8(v >> 16)
	g := uint8(v >> 8)
	b := uint8(v)
	return color.RGBA{r, g, b, 255}
}

// Ex: "#336699", "336699".
func ParseRgbaHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad color: %q", s)
	}
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color: %q: %w", s, err)
	}
	return RgbaFromInt(int(u)), nil
}

// Used by the x cursors.
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r), uint16(g), uint16(b), uint16(a)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	tint := func(x uint8) uint8 {
		return x + uint8(float64(255-x)*v)
	}
	return color.RGBA{tint(c2.R), tint(c2.G), tint(c2.B), c2.A}
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	c2 := RgbaColor(c)
	shade := func(x uint8) uint8 {
		return x - uint8(float64(x)*v)
	}
	return color.RGBA{shade(c2.R), shade(c2.G), shade(c2.B), c2.A}
}
