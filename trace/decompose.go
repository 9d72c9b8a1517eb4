package trace

import (
	"context"
	"math/bits"

	vectorize "github.com/dalefugier/Vectorize"
)

// point is a lattice point: a pixel corner.
type point struct {
	x, y int
}

// boundary is a closed lattice path found by decomposition.
type boundary struct {
	pts  []point
	area int
	sign bool
}

// decompose finds the boundaries of all regions in bm, in the order they
// are encountered scanning from the top left.
func decompose(ctx context.Context, bm *vectorize.BinaryBitmap, turdSize int, policy vectorize.TurnPolicy) ([]boundary, error) {
	g := newGrid(bm)
	var out []boundary
	x, y := 0, g.h-1
	for {
		var ok bool
		x, y, ok = g.findNext(x, y)
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sign := bm.At(x, y)
		b := g.findPath(x, y+1, sign, policy)
		g.invertPath(b.pts)
		if b.area <= turdSize {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// findPath walks the boundary that starts at the lattice point (x0, y0),
// the top left corner of a set pixel, heading down.
func (g *grid) findPath(x0, y0 int, sign bool, policy vectorize.TurnPolicy) boundary {
	x, y := x0, y0
	dirx, diry := 0, -1
	var pts []point
	area := 0
	for {
		pts = append(pts, point{x, y})
		x += dirx
		y += diry
		area += x * diry
		if x == x0 && y == y0 {
			break
		}

		// The pixels ahead on the right (c) and on the left (d).
		c := g.get(x+(dirx+diry-1)/2, y+(diry-dirx-1)/2)
		d := g.get(x+(dirx-diry-1)/2, y+(diry+dirx-1)/2)

		switch {
		case c && !d:
			if g.turnRight(x, y, sign, policy) {
				dirx, diry = diry, -dirx
			} else {
				dirx, diry = -diry, dirx
			}
		case c:
			dirx, diry = diry, -dirx
		case !d:
			dirx, diry = -diry, dirx
		}
	}
	if area < 0 {
		area = -area
	}
	return boundary{pts: pts, area: area, sign: sign}
}

// turnRight resolves an ambiguous configuration at (x, y).
func (g *grid) turnRight(x, y int, sign bool, policy vectorize.TurnPolicy) bool {
	switch policy {
	case vectorize.TurnRight:
		return true
	case vectorize.TurnBlack:
		return sign
	case vectorize.TurnWhite:
		return !sign
	case vectorize.TurnRandom:
		return detrand(x, y)
	case vectorize.TurnMajority:
		return g.majority(x, y)
	case vectorize.TurnMinority:
		return !g.majority(x, y)
	default:
		return false
	}
}

// detrand returns a pseudo-random bit that depends only on (x, y).
func detrand(x, y int) bool {
	z := (uint32(0x04b3e375)*uint32(x) ^ uint32(y)) * 0x05a8ef93
	return bits.OnesCount32(z)&1 == 1
}
