package vectorize

import (
	"iter"

	"honnef.co/go/curve"
)

// CurveSet is the result of a retrace.
//
// Curves[0] is always the border rectangle of the source bitmap, whether
// or not the border is part of the output. Consumers that draw or export
// curves use [CurveSet.Visible], which leaves it out unless
// IncludeBorder is set. The remaining curves are in tracer order.
//
// A published CurveSet is never modified. Callers must not modify it
// either.
type CurveSet struct {
	Curves []curve.BezPath
	// Bounds is the bounding box of Curves[0].
	Bounds        curve.Rect
	IncludeBorder bool

	// Size of the source bitmap in pixels.
	Width, Height int
	// Scale factors that map pixels to output units.
	ScaleX, ScaleY float64
	// Number of traced paths that couldn't be reconstructed.
	Skipped int
}

// Len returns the number of curves, including the border.
func (cs *CurveSet) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.Curves)
}

// Border returns the border curve.
func (cs *CurveSet) Border() (curve.BezPath, bool) {
	if cs.Len() == 0 {
		return nil, false
	}
	return cs.Curves[0], true
}

// Paths returns the traced curves, without the border.
func (cs *CurveSet) Paths() []curve.BezPath {
	if cs.Len() < 2 {
		return nil
	}
	return cs.Curves[1:]
}

// Visible yields the index and curve of every curve that should be drawn
// or exported.
func (cs *CurveSet) Visible() iter.Seq2[int, curve.BezPath] {
	return func(yield func(int, curve.BezPath) bool) {
		if cs == nil {
			return
		}
		for i, c := range cs.Curves {
			if i == 0 && !cs.IncludeBorder {
				continue
			}
			if !yield(i, c) {
				return
			}
		}
	}
}

// VisibleCurves returns the curves yielded by [CurveSet.Visible].
func (cs *CurveSet) VisibleCurves() []curve.BezPath {
	var out []curve.BezPath
	for _, c := range cs.Visible() {
		out = append(out, c)
	}
	return out
}

// withBorder returns a shallow copy of cs with IncludeBorder set to v.
// The curves are shared.
func (cs *CurveSet) withBorder(v bool) *CurveSet {
	n := *cs
	n.IncludeBorder = v
	return &n
}

// borderCurve returns the closed rectangle from (0, 0) to (w, h).
func borderCurve(w, h int) curve.BezPath {
	return curve.Rect{X0: 0, Y0: 0, X1: float64(w), Y1: float64(h)}.Path(0)
}
