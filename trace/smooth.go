package trace

import (
	"math"

	vectorize "github.com/dalefugier/Vectorize"
	"honnef.co/go/curve"
)

const (
	minAlpha = 0.55
	maxAlpha = 1.0
)

// piece is one segment of a smoothed polygon. It starts where the
// previous piece ends. Corners turn at vertex; curves use the control
// points c1 and c2.
type piece struct {
	kind   vectorize.SegmentKind
	vertex curve.Point
	c1, c2 curve.Point
	end    curve.Point
	// alpha is the corner measure of vertex, and conv the direction the
	// polygon turns at it.
	alpha float64
	conv  float64
}

// smooth replaces every vertex of the closed polygon v by either a corner
// or a cubic curve, depending on how sharply the polygon turns there.
// Piece j ends at the midpoint of v[j] and v[j+1]; the last piece ends
// where the first one starts.
func smooth(v []curve.Point, alphaMax float64) []piece {
	m := len(v)
	out := make([]piece, m)
	for j := range m {
		i := (j + m - 1) % m
		k := (j + 1) % m

		end := interval(0.5, v[k], v[j])
		var alpha float64
		if denom := ddenom(v[i], v[k]); denom != 0 {
			dd := math.Abs(dpara(v[i], v[j], v[k]) / denom)
			if dd > 1 {
				alpha = 1 - 1/dd
			}
			alpha /= 0.75
		} else {
			alpha = 4.0 / 3.0
		}

		p := piece{vertex: v[j], end: end, alpha: alpha, conv: sign(dpara(v[i], v[j], v[k]))}
		if alpha >= alphaMax {
			p.kind = vectorize.Corner
		} else {
			alpha = min(max(alpha, minAlpha), maxAlpha)
			p.kind = vectorize.CurveTo
			p.c1 = interval(0.5+0.5*alpha, v[i], v[j])
			p.c2 = interval(0.5+0.5*alpha, v[k], v[j])
		}
		out[j] = p
	}
	return out
}
