package vectorize

import (
	"image"
	"image/color"
	"testing"
)

func TestRenderPreview(t *testing.T) {
	cs := tracedSquare(t, false)
	s := newTestSession(&fakeTracer{})
	if err := s.Retrace(t.Context()); err != nil {
		t.Fatal(err)
	}
	bm := s.Bitmap()

	img := RenderPreview(cs, bm, PreviewOptions{Zoom: 2, LineWidth: 2})
	if img.Rect != image.Rect(0, 0, 20, 20) {
		t.Fatalf("got bounds %v", img.Rect)
	}
	for _, tc := range []struct {
		x, y int
		want color.NRGBA
		what string
	}{
		{0, 0, color.NRGBA{0xff, 0xff, 0xff, 0xff}, "background"},
		// Raster pixel (3, 3) of the source is dark.
		{6, 6, color.NRGBA{0xd0, 0xd0, 0xd0, 0xff}, "bitmap"},
		// The left edge of the square, at x = 2 pixels.
		{4, 12, color.NRGBA{0xff, 0, 0, 0xff}, "curve"},
		{3, 12, color.NRGBA{0xff, 0, 0, 0xff}, "curve"},
	} {
		if got := img.NRGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("%s at (%d, %d): got %v, want %v", tc.what, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRenderPreviewWithoutBitmap(t *testing.T) {
	img := RenderPreview(tracedSquare(t, false), nil, PreviewOptions{})
	if img.Rect != image.Rect(0, 0, 10, 10) {
		t.Errorf("got bounds %v", img.Rect)
	}
	if got := RenderPreview(nil, nil, PreviewOptions{}); !got.Rect.Empty() {
		t.Errorf("got bounds %v for nothing", got.Rect)
	}
}
