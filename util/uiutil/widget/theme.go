package widget

import (
	"image/color"

	"github.com/jmigpin/scrollbox/util/imageutil"
)

// Class is the style hook of a node: palette lookups try "<class>_<name>"
// before "<name>".
type Theme struct {
	Palette Palette
	Class   string
}

//----------

type Palette map[string]color.Color

func MakePalette() Palette {
	return make(Palette)
}

func (pal Palette) Copy() Palette {
	pal2 := MakePalette()
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}

	// used if a color name is not found
	debugColor color.Color = color.RGBA{255, 0, 0, 255}
)

var DefaultPalette = Palette{
	"fg": Black,
	"bg": White,

	"thumbVertical_bg":         cint(0x9e9e9e),
	"thumbVertical_hover_bg":   cint(0x7e7e7e),
	"thumbVertical_drag_bg":    cint(0x5e5e5e),
	"thumbHorizontal_bg":       cint(0x9e9e9e),
	"thumbHorizontal_hover_bg": cint(0x7e7e7e),
	"thumbHorizontal_drag_bg":  cint(0x5e5e5e),
}

func cint(c int) color.RGBA {
	return imageutil.RgbaFromInt(c)
}

//----------

func (en *EmbedNode) SetThemePalette(p Palette) {
	en.theme.Palette = p
	en.MarkNeedsPaint()
}

func (en *EmbedNode) SetThemePaletteColor(name string, c color.Color) {
	if en.theme.Palette == nil {
		en.theme.Palette = MakePalette()
	}
	en.theme.Palette[name] = c
	en.MarkNeedsPaint()
}

func (en *EmbedNode) SetThemeClass(class string) {
	en.theme.Class = class
	en.MarkNeedsPaint()
}

func (en *EmbedNode) ThemeClass() string {
	return en.theme.Class
}

//----------

func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	if c, ok := en.ClassPaletteColor(name); ok {
		return c
	}
	if c, ok := en.treePaletteColor(name); ok {
		return c
	}
	// last resort: a color that is not white/black to help debug
	return debugColor
}

// Only looks for the "<class>_<name>" key. Useful for optional layers that
// shouldn't paint unless styled.
func (en *EmbedNode) ClassPaletteColor(name string) (color.Color, bool) {
	if en.theme.Class == "" {
		return nil, false
	}
	return en.treePaletteColor(en.theme.Class + "_" + name)
}

func (en *EmbedNode) treePaletteColor(name string) (color.Color, bool) {
	for n := en; n != nil; n = n.Parent {
		if c, ok := n.theme.Palette[name]; ok {
			return c, true
		}
	}
	// at root tree and not found, try default palette
	c, ok := DefaultPalette[name]
	return c, ok
}
