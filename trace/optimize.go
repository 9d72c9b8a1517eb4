package trace

import (
	"math"

	vectorize "github.com/dalefugier/Vectorize"
	"honnef.co/go/curve"
)

const (
	// maxTurn bounds the total turning of a run of merged curves.
	maxTurn = 179 * math.Pi / 180

	nearestAccuracy = 1e-3
	lambdaStep      = 0.05
	lambdaMin       = 0.3
)

// optimize joins runs of consecutive curve pieces into single cubics
// wherever the joined curve stays within tol of the pieces it replaces.
// Runs don't wrap around the end of the path, so the start point of the
// path is preserved.
func optimize(pcs []piece, tol float64) []piece {
	if len(pcs) < 2 || tol <= 0 {
		return pcs
	}
	out := make([]piece, 0, len(pcs))
	start := pcs[len(pcs)-1].end
	for i := 0; i < len(pcs); {
		if pcs[i].kind != vectorize.CurveTo {
			out = append(out, pcs[i])
			start = pcs[i].end
			i++
			continue
		}
		best, bestJ := pcs[i], i
		turn := turning(start, pcs[i])
		for j := i + 1; j < len(pcs); j++ {
			if pcs[j].kind != vectorize.CurveTo || pcs[j].conv != pcs[i].conv {
				break
			}
			turn += turning(pcs[j-1].end, pcs[j])
			if turn >= maxTurn {
				break
			}
			merged, ok := fit(start, pcs[i:j+1], tol)
			if !ok {
				break
			}
			best, bestJ = merged, j
		}
		out = append(out, best)
		start = best.end
		i = bestJ + 1
	}
	return out
}

// turning returns the absolute angle between the start and end tangents
// of p, which starts at start.
func turning(start curve.Point, p piece) float64 {
	a, b := p.c1.Sub(start), p.end.Sub(p.c2)
	return math.Abs(math.Atan2(a.Cross(b), a.Dot(b)))
}

// fit returns a single curve piece from start through the end of run that
// keeps its start and end tangents, if one exists within tol.
func fit(start curve.Point, run []piece, tol float64) (piece, bool) {
	first, last := run[0], run[len(run)-1]
	end := last.end
	d0, d1 := first.c1.Sub(start), last.c2.Sub(end)

	// The tangent lines start + s*d0 and end + u*d1 meet at o.
	den := d0.Cross(d1)
	if den == 0 {
		return piece{}, false
	}
	w := end.Sub(start)
	s, u := w.Cross(d1)/den, w.Cross(d0)/den
	if s <= 0 || u <= 0 {
		return piece{}, false
	}
	o := start.Translate(d0.Mul(s))

	samples := sample(start, run)
	bestErr := math.Inf(1)
	var best piece
	for lambda := lambdaMin; lambda <= 1+1e-9; lambda += lambdaStep {
		c := curve.CubicBez{
			P0: start,
			P1: interval(lambda, start, o),
			P2: interval(lambda, end, o),
			P3: end,
		}
		e := 0.0
		for _, pt := range samples {
			d, _ := c.Nearest(pt, nearestAccuracy)
			e = max(e, d)
			if e >= bestErr {
				break
			}
		}
		if e < bestErr {
			bestErr = e
			best = piece{kind: vectorize.CurveTo, c1: c.P1, c2: c.P2, end: end, vertex: o, alpha: lambda, conv: first.conv}
		}
	}
	if math.Sqrt(bestErr) > tol {
		return piece{}, false
	}
	return best, true
}

// sample returns points along the curves of run, which starts at start.
func sample(start curve.Point, run []piece) []curve.Point {
	var pts []curve.Point
	p0 := start
	for _, p := range run {
		c := curve.CubicBez{P0: p0, P1: p.c1, P2: p.c2, P3: p.end}
		for _, t := range [...]float64{0.25, 0.5, 0.75, 1} {
			pts = append(pts, c.Eval(t))
		}
		p0 = p.end
	}
	return pts
}
