package vectorize

import (
	"image"
	"image/color"
	"testing"
)

// gray returns a w×h source filled with v, with the pixels in dark set to
// black.
func gray(w, h int, v uint8, dark ...image.Point) Source {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	for _, p := range dark {
		img.SetNRGBA(p.X, p.Y, color.NRGBA{0, 0, 0, 0xff})
	}
	src, err := NewImageSource(img)
	if err != nil {
		panic(err)
	}
	return src
}

func TestBinarizeFlip(t *testing.T) {
	// Raster (0, 0) is the top left pixel, cartesian (0, H-1).
	bm := Binarize(gray(4, 3, 0xff, image.Pt(0, 0)), 0.5)
	if bm.Width() != 4 || bm.Height() != 3 {
		t.Fatalf("got size %dx%d, want 4x3", bm.Width(), bm.Height())
	}
	if !bm.At(0, 2) {
		t.Errorf("top left pixel isn't set:\n%s", bm)
	}
	if n := bm.Count(); n != 1 {
		t.Errorf("got %d set pixels, want 1", n)
	}
	if bm.Threshold() != 0.5 {
		t.Errorf("got threshold %v, want 0.5", bm.Threshold())
	}
}

func TestBinarizeThreshold(t *testing.T) {
	src := gray(2, 2, 0x80)
	for _, tc := range []struct {
		t    float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.6, 4},
		{1, 4},
		// Clamped to 1.
		{7, 4},
	} {
		if n := Binarize(src, tc.t).Count(); n != tc.want {
			t.Errorf("threshold %v: got %d set pixels, want %d", tc.t, n, tc.want)
		}
	}
}

func TestBinarizeMonotonic(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			v := uint8(x*16 + y)
			img.SetNRGBA(x, y, color.NRGBA{v, v / 2, 0xff - v, uint8(0x80 + y*8)})
		}
	}
	src, err := NewImageSource(img)
	if err != nil {
		t.Fatal(err)
	}
	prev := Binarize(src, 0)
	for i := 1; i <= 20; i++ {
		bm := Binarize(src, float64(i)/20)
		for y := range 16 {
			for x := range 16 {
				if prev.At(x, y) && !bm.At(x, y) {
					t.Fatalf("pixel (%d, %d) cleared when raising the threshold to %v", x, y, bm.Threshold())
				}
			}
		}
		prev = bm
	}
}

func TestBinarizeTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	// Fully transparent black counts as white.
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 0, 0xff})
	src, _ := NewImageSource(img)
	bm := Binarize(src, 0.5)
	if bm.At(0, 0) || !bm.At(1, 0) {
		t.Errorf("got\n%s", bm)
	}
}

func TestBinarizeInvalid(t *testing.T) {
	if Binarize(nil, 0.5) != nil {
		t.Error("got a bitmap for a nil source")
	}
	src, _ := NewImageSource(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	if Binarize(src, 0.5) != nil {
		t.Error("got a bitmap for an empty source")
	}
}
