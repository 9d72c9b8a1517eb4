package trace

import "honnef.co/go/curve"

func (p point) pt() curve.Point {
	return curve.Pt(float64(p.x), float64(p.y))
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// dpara returns the area of the parallelogram spanned by p1-p0 and p2-p0.
func dpara(p0, p1, p2 curve.Point) float64 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// ddenom returns the denominator used to normalize dpara for the corner
// test: the distance from p0 to p2 measured along the direction of the
// axis-aligned normal of p0p2.
func ddenom(p0, p2 curve.Point) float64 {
	d := p2.Sub(p0)
	rx, ry := sign(d.X), -sign(d.Y)
	return ry*d.X - rx*d.Y
}

// interval returns the point at lambda along the segment from a to b.
func interval(lambda float64, a, b curve.Point) curve.Point {
	return a.Lerp(b, lambda)
}
