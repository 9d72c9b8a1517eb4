package trace

import (
	"context"
	"slices"

	vectorize "github.com/dalefugier/Vectorize"
	"honnef.co/go/curve"
)

// Tracer is a potrace-style [vectorize.Tracer]. The zero value is ready
// to use and safe for concurrent use.
type Tracer struct{}

var _ vectorize.Tracer = (*Tracer)(nil)

// New returns a new tracer.
func New() *Tracer { return &Tracer{} }

// Trace implements [vectorize.Tracer]. Paths are returned in the order
// their top left pixel is found scanning bm from the top. Outer
// boundaries run counterclockwise and holes clockwise.
func (*Tracer) Trace(ctx context.Context, bm *vectorize.BinaryBitmap, p vectorize.Params) ([]vectorize.Path, error) {
	if bm == nil || bm.Width() == 0 || bm.Height() == 0 {
		return nil, nil
	}
	bounds, err := decompose(ctx, bm, p.TurdSize(), p.TurnPolicy())
	if err != nil {
		return nil, err
	}

	out := make([]vectorize.Path, 0, len(bounds))
	for _, b := range bounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx := polygon(b.pts)
		v := make([]curve.Point, len(idx))
		for i, k := range idx {
			v[i] = b.pts[k].pt()
		}
		if !b.sign {
			slices.Reverse(v)
		}
		pcs := smooth(v, p.AlphaMax())
		if p.OptimizeCurve() {
			pcs = optimize(pcs, p.OptimizeTolerance())
		}
		out = append(out, vectorize.Path{
			Area:     b.area,
			Sign:     b.sign,
			Segments: segments(pcs),
		})
	}
	vectorize.Logger().Debug("traced bitmap", "width", bm.Width(), "height", bm.Height(), "paths", len(out))
	return out, nil
}

// segments converts a closed sequence of pieces into segments, each
// starting where the previous one ends.
func segments(pcs []piece) []vectorize.Segment {
	if len(pcs) == 0 {
		return nil
	}
	segs := make([]vectorize.Segment, len(pcs))
	p0 := pcs[len(pcs)-1].end
	for i, p := range pcs {
		if p.kind == vectorize.Corner {
			segs[i] = vectorize.CornerSeg(p0, p.vertex, p.end)
		} else {
			segs[i] = vectorize.CurveSeg(p0, p.c1, p.c2, p.end)
		}
		p0 = p.end
	}
	return segs
}
