package vectorize

import (
	"fmt"
	"math"
	"slices"

	"honnef.co/go/curve"
)

// closeEpsilon is the relative tolerance used when comparing end points.
const closeEpsilon = 1e-9

// ReconstructOptions control how [ReconstructWith] assembles a curve.
type ReconstructOptions struct {
	// Simplify drops zero-length pieces and merges adjacent collinear
	// lines.
	Simplify bool
	// SimplifyAccuracy, if positive, additionally refits the assembled
	// curve with [curve.Simplify] to within this distance. Corners are
	// preserved; smooth runs of segments may be replaced by fewer cubics.
	SimplifyAccuracy float64
	// SimplifyOptions are passed to [curve.Simplify]. The zero value
	// selects [curve.DefaultSimplifyOptions].
	SimplifyOptions curve.SimplifyOptions
}

// DefaultReconstructOptions are the options used by [Reconstruct].
var DefaultReconstructOptions = ReconstructOptions{Simplify: true}

// Reconstruct assembles the segments of one traced path into a single
// continuous curve, using [DefaultReconstructOptions].
func Reconstruct(segs []Segment) (curve.BezPath, bool) {
	return ReconstructWith(segs, DefaultReconstructOptions)
}

// ReconstructWith assembles the segments of one traced path into a single
// continuous curve.
//
// A Corner segment becomes two lines P0-P1-P2. A CurveTo segment becomes a
// cubic Bézier, unless its handles are degenerate, in which case it
// becomes two lines P0-P2-P3. Consecutive segments are assumed to be
// continuous. A path of more than one segment must be closed, ending where
// it started; the resulting curve then ends with a ClosePath element. A
// single segment is closed only if it ends where it starts.
//
// The second return value is false if segs is empty, contains unknown
// segment kinds or non-finite coordinates, or isn't closed.
func ReconstructWith(segs []Segment, opts ReconstructOptions) (curve.BezPath, bool) {
	if len(segs) == 0 {
		return nil, false
	}
	for _, seg := range segs {
		if seg.Kind != Corner && seg.Kind != CurveTo {
			return nil, false
		}
		for _, pt := range seg.Points() {
			if !finite(pt) {
				return nil, false
			}
		}
	}

	start, end := segs[0].Start(), segs[len(segs)-1].End()
	closed := samePoint(start, end)
	if len(segs) > 1 && !closed {
		return nil, false
	}

	p := make(curve.BezPath, 0, 2*len(segs)+2)
	p.MoveTo(start)
	for _, seg := range segs {
		switch seg.Kind {
		case Corner:
			p.LineTo(seg.P1)
			p.LineTo(seg.P2)
		case CurveTo:
			if degenerateCubic(seg) {
				p.LineTo(seg.P2)
				p.LineTo(seg.P3)
			} else {
				p.CubicTo(seg.P1, seg.P2, seg.P3)
			}
		}
	}
	if closed {
		p.ClosePath()
	}

	if !opts.Simplify {
		return p, true
	}
	q := mergePieces(p)
	if !q.HasSegments() {
		// Every piece had zero length.
		q = p
	}
	if opts.SimplifyAccuracy > 0 {
		if r, err := refit(q, opts); err == nil {
			q = r
		} else {
			Logger().Debug("keeping unsimplified curve", "error", err)
		}
	}
	return q, true
}

// ReconstructAll reconstructs every path in tracer order, skipping paths
// that can't be reconstructed. It returns the curves and the number of
// skipped paths.
func ReconstructAll(paths []Path, opts ReconstructOptions) ([]curve.BezPath, int) {
	out := make([]curve.BezPath, 0, len(paths))
	skipped := 0
	for i, path := range paths {
		c, ok := ReconstructWith(path.Segments, opts)
		if !ok {
			skipped++
			Logger().Debug("skipping path", "index", i, "segments", len(path.Segments))
			continue
		}
		out = append(out, c)
	}
	return out, skipped
}

func finite(pt curve.Point) bool {
	return !pt.IsNaN() && !pt.IsInf()
}

func samePoint(a, b curve.Point) bool {
	scale := max(1, math.Abs(a.X), math.Abs(a.Y))
	return a.Distance(b) <= closeEpsilon*scale
}

func collinear(a, b, c curve.Point) bool {
	u, v := b.Sub(a), c.Sub(a)
	scale := max(u.Hypot2(), v.Hypot2())
	if scale == 0 {
		return true
	}
	cross := u.Cross(v)
	return cross*cross <= closeEpsilon*closeEpsilon*scale*scale
}

// degenerateCubic reports whether the handles of a CurveTo segment
// collapse, either onto each other or onto the chord.
func degenerateCubic(seg Segment) bool {
	switch {
	case samePoint(seg.P1, seg.P2):
		return true
	case samePoint(seg.P0, seg.P1) && samePoint(seg.P2, seg.P3):
		return true
	case samePoint(seg.P0, seg.P3):
		// A loop has no chord to collapse onto.
		return false
	case collinear(seg.P0, seg.P1, seg.P3) && collinear(seg.P0, seg.P2, seg.P3):
		return true
	default:
		return false
	}
}

// mergePieces drops zero-length pieces and joins runs of collinear lines
// that continue in the same direction.
func mergePieces(p curve.BezPath) curve.BezPath {
	out := make(curve.BezPath, 0, len(p))
	var cur curve.Point
	// Index in out of the previous LineTo, or -1.
	lastLine := -1
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind:
			out = append(out, el)
			cur = el.P0
			lastLine = -1
		case curve.LineToKind:
			if samePoint(cur, el.P0) {
				continue
			}
			if lastLine >= 0 && lastLine == len(out)-1 {
				prev := startOf(out, lastLine)
				mid := out[lastLine].P0
				if collinear(prev, mid, el.P0) && mid.Sub(prev).Dot(el.P0.Sub(mid)) > 0 {
					out[lastLine].P0 = el.P0
					cur = el.P0
					continue
				}
			}
			out = append(out, el)
			lastLine = len(out) - 1
			cur = el.P0
		case curve.CubicToKind:
			if samePoint(cur, el.P0) && samePoint(cur, el.P1) && samePoint(cur, el.P2) {
				continue
			}
			out = append(out, el)
			lastLine = -1
			cur = el.P2
		default:
			out = append(out, el)
			lastLine = -1
		}
	}
	return out
}

// startOf returns the start point of the element at index i.
func startOf(p curve.BezPath, i int) curve.Point {
	pt, _ := p[i-1].EndPoint()
	return pt
}

// refit runs p through curve.Simplify and checks that the result is
// still a single subpath with the same end points.
func refit(p curve.BezPath, opts ReconstructOptions) (q curve.BezPath, err error) {
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, fmt.Errorf("simplify: %v", r)
		}
	}()
	so := opts.SimplifyOptions
	if so == (curve.SimplifyOptions{}) {
		so = curve.DefaultSimplifyOptions
	}
	q = slices.Collect(curve.Simplify(p.Elements(), opts.SimplifyAccuracy, so))

	if !q.HasSegments() || q.IsNaN() || q.IsInf() {
		return nil, fmt.Errorf("simplify: invalid result")
	}
	moves := 0
	for _, el := range q {
		if el.Kind == curve.MoveToKind {
			moves++
		}
	}
	if moves != 1 || q[0].Kind != curve.MoveToKind || !samePoint(q[0].P0, p[0].P0) {
		return nil, fmt.Errorf("simplify: start point moved")
	}
	if !samePoint(lastPoint(q), lastPoint(p)) {
		return nil, fmt.Errorf("simplify: end point moved")
	}
	if (p[len(p)-1].Kind == curve.ClosePathKind) != (q[len(q)-1].Kind == curve.ClosePathKind) {
		return nil, fmt.Errorf("simplify: closure changed")
	}
	return q, nil
}

// lastPoint returns the end point of the last drawing element of p.
func lastPoint(p curve.BezPath) curve.Point {
	for i := len(p) - 1; i >= 0; i-- {
		if pt, ok := p[i].EndPoint(); ok {
			return pt
		}
	}
	return curve.Point{}
}
