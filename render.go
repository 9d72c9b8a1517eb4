package vectorize

import (
	"image"
	"image/color"
	"iter"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// PreviewOptions control [RenderPreview].
type PreviewOptions struct {
	// Zoom is the number of preview pixels per bitmap pixel, at least 1.
	Zoom int
	// LineWidth of the curve outlines in preview pixels, 1 by default.
	LineWidth float64
	// Colors of the background, of set bitmap pixels and of curves.
	// Defaults are white, light grey and red.
	Background, Foreground, Curve color.Color
}

func (opts *PreviewOptions) setDefaults() {
	if opts.Zoom < 1 {
		opts.Zoom = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Foreground == nil {
		opts.Foreground = color.NRGBA{0xd0, 0xd0, 0xd0, 0xff}
	}
	if opts.Curve == nil {
		opts.Curve = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	}
}

// RenderPreview draws the visible curves of cs over the bitmap bm, as an
// overlay for judging the current parameters. bm may be nil, in which
// case only the curves are drawn. The image is top-down and sized after
// the source bitmap.
func RenderPreview(cs *CurveSet, bm *BinaryBitmap, opts PreviewOptions) *image.NRGBA {
	opts.setDefaults()
	z := opts.Zoom

	w, h := 0, 0
	switch {
	case bm != nil:
		w, h = bm.Width(), bm.Height()
	case cs != nil:
		w, h = cs.Width, cs.Height
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w*z, h*z))
	xdraw.Draw(dst, dst.Rect, image.NewUniform(opts.Background), image.Point{}, xdraw.Src)
	if w == 0 || h == 0 {
		return dst
	}

	if bm != nil {
		fg := color.NRGBAModel.Convert(opts.Foreground).(color.NRGBA)
		for y := range h * z {
			for x := range w * z {
				if bm.At(x/z, h-1-y/z) {
					dst.SetNRGBA(x, y, fg)
				}
			}
		}
	}

	if cs.Len() == 0 {
		return dst
	}
	sx, sy := cs.ScaleX, cs.ScaleY
	if sx == 0 || sy == 0 {
		sx, sy = 1, 1
	}
	// Output units to preview pixels, flipping to top-down.
	aff := curve.Scale(float64(z)/sx, -float64(z)/sy).ThenTranslate(curve.Vec(0, float64(h*z)))
	style := curve.DefaultStroke.WithWidth(opts.LineWidth)

	var r vector.Rasterizer
	r.Reset(w*z, h*z)
	for _, c := range cs.Visible() {
		outline := curve.StrokePath(c.Transform(aff).Elements(), style, curve.StrokeOpts{}, 0.1)
		rasterize(&r, outline)
	}
	r.Draw(dst, dst.Rect, image.NewUniform(opts.Curve), image.Point{})
	return dst
}

// rasterize adds the elements of seq to r, closing every subpath.
func rasterize(r *vector.Rasterizer, seq iter.Seq[curve.PathElement]) {
	open := false
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case curve.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			r.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case curve.CubicToKind:
			r.CubeTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y), float32(el.P2.X), float32(el.P2.Y))
		case curve.ClosePathKind:
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
	if open {
		r.ClosePath()
	}
}
