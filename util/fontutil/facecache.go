package fontutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches glyph masks and advances of a face. Not safe for concurrent use.
type FaceCache struct {
	font.Face
	gc  map[rune]*glyphCache
	gac map[rune]*glyphAdvanceCache
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gc = map[rune]*glyphCache{}
	fc.gac = map[rune]*glyphAdvanceCache{}
	return fc
}

func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = newGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	return gc.dr.Add(p), gc.mask, gc.maskp, gc.advance, gc.ok
}

func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	gac, ok := fc.gac[ru]
	if !ok {
		adv, ok2 := fc.Face.GlyphAdvance(ru)
		gac = &glyphAdvanceCache{adv, ok2}
		fc.gac[ru] = gac
	}
	return gac.advance, gac.ok
}

//----------

type glyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func newGlyphCache(face font.Face, ru rune) *glyphCache {
	var zeroDot fixed.Point26_6 // always use zero, translated on lookup
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)
	// the truetype face reuses its mask buffer between calls
	if ok {
		mask = copyMask(mask)
	}
	return &glyphCache{dr, mask, maskp, adv, ok}
}

type glyphAdvanceCache struct {
	advance fixed.Int26_6
	ok      bool
}

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	a2 := *alpha // copy structure
	a2.Pix = make([]uint8, len(alpha.Pix))
	copy(a2.Pix, alpha.Pix)
	return &a2
}
