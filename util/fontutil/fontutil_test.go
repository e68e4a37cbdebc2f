package fontutil

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFontFaceCached(t *testing.T) {
	f := DefaultFont()
	ff1 := f.FontFace2(14)
	ff2 := f.FontFace2(14)
	if ff1 != ff2 {
		t.Fatal("expecting cached face")
	}
	if ff1.LineHeightInt() <= 0 {
		t.Fatalf("bad line height: %v", ff1.LineHeightInt())
	}
	if ff1.BaseLineInt() > ff1.LineHeightInt() {
		t.Fatal("baseline below line height")
	}
}

func TestFaceCacheGlyph(t *testing.T) {
	ff := DefaultFontFace()
	dot := fixed.P(10, 20)
	dr1, _, _, adv1, ok1 := ff.Face.Glyph(dot, 'W')
	dr2, _, _, adv2, ok2 := ff.Face.Glyph(dot, 'W')
	if !ok1 || !ok2 {
		t.Fatal("glyph not found")
	}
	if dr1 != dr2 || adv1 != adv2 {
		t.Fatalf("cached glyph differs: %v %v", dr1, dr2)
	}
	if w := ff.MeasureString("WW"); w <= adv1.Floor() {
		t.Fatalf("bad measure: %v", w)
	}
}

func TestNewFontError(t *testing.T) {
	if _, err := NewFont([]byte("not a font")); err == nil {
		t.Fatal("expecting error")
	}
}
