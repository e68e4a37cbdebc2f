package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestBGRASwap(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 2, 2))
	c := color.RGBA{10, 20, 30, 255}
	img.Set(1, 1, c)
	if u := img.RGBA.RGBAAt(1, 1); u != (color.RGBA{30, 20, 10, 255}) {
		t.Fatal(u)
	}
	if u := img.At(1, 1); u != c {
		t.Fatal(u)
	}
}

func TestFillRectangleBGRA(t *testing.T) {
	img := NewBGRA(image.Rect(0, 0, 4, 4))
	c := color.RGBA{1, 2, 3, 255}
	FillRectangle(img, image.Rect(1, 1, 3, 3), c)
	if u := img.At(2, 2); u != c {
		t.Fatal(u)
	}
	if u := img.At(0, 0); u != (color.RGBA{}) {
		t.Fatal(u)
	}
}

func TestSubImageClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sub := SubImage(img, image.Rect(2, 2, 5, 5))
	c := color.RGBA{255, 0, 0, 255}
	FillRectangle(sub, image.Rect(0, 0, 10, 10), c)
	if img.RGBAAt(3, 3) != c {
		t.Fatal("inside not painted")
	}
	if img.RGBAAt(6, 6) != (color.RGBA{}) {
		t.Fatal("outside painted")
	}

	bgra := NewBGRA(image.Rect(0, 0, 10, 10))
	sub2 := SubImage(bgra, image.Rect(0, 0, 1, 1))
	if _, ok := sub2.(*BGRA); !ok {
		t.Fatalf("%T", sub2)
	}
}

func TestParseRgbaHex(t *testing.T) {
	c, err := ParseRgbaHex("#336699")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0x33, 0x66, 0x99, 255}) {
		t.Fatal(c)
	}
	if _, err := ParseRgbaHex("zz"); err == nil {
		t.Fatal("expecting error")
	}
}
