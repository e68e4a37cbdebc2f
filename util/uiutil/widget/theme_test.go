package widget

import (
	"image/color"
	"testing"
)

func TestThemeClassLookup(t *testing.T) {
	ctx, sb := newTestBox(pt(200, 300), pt(200, 900))
	_ = ctx

	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	// class key found up the tree
	sb.SetThemePaletteColor("thumbVertical_bg", red)
	if c := sb.ThumbVertical.TreeThemePaletteColor("bg"); c != red {
		t.Fatal(c)
	}
	// plain key when the class key is missing
	sb.SetThemePaletteColor("fg", blue)
	if c := sb.ThumbVertical.TreeThemePaletteColor("fg"); c != blue {
		t.Fatal(c)
	}
	// default palette
	if c := sb.ThumbHorizontal.TreeThemePaletteColor("bg"); c != DefaultPalette["thumbHorizontal_bg"] {
		t.Fatal(c)
	}
	// not found anywhere
	if c := sb.TreeThemePaletteColor("nonexistent"); c != debugColor {
		t.Fatal(c)
	}
	if _, ok := sb.Scroll.ClassPaletteColor("bg"); ok {
		t.Fatal("wrapper bg should be unset")
	}
	if sb.Content.Embed().ThemeClass() != "content" {
		t.Fatal(sb.Content.Embed().ThemeClass())
	}
}
