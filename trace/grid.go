package trace

import vectorize "github.com/dalefugier/Vectorize"

// grid is a mutable copy of a bitmap that decomposition consumes.
type grid struct {
	w, h int
	pix  []bool
}

func newGrid(bm *vectorize.BinaryBitmap) *grid {
	g := &grid{w: bm.Width(), h: bm.Height()}
	g.pix = make([]bool, g.w*g.h)
	for y := range g.h {
		for x := range g.w {
			g.pix[y*g.w+x] = bm.At(x, y)
		}
	}
	return g
}

func (g *grid) get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return false
	}
	return g.pix[y*g.w+x]
}

// findNext returns the next set pixel at or after (x, y), scanning rows
// from the top and pixels from the left.
func (g *grid) findNext(x, y int) (int, int, bool) {
	for ; y >= 0; y-- {
		for ; x < g.w; x++ {
			if g.pix[y*g.w+x] {
				return x, y, true
			}
		}
		x = 0
	}
	return 0, 0, false
}

// invertRow inverts the pixels of row y between columns x and xa.
func (g *grid) invertRow(y, x, xa int) {
	lo, hi := max(min(x, xa), 0), min(max(x, xa), g.w)
	row := g.pix[y*g.w : (y+1)*g.w]
	for i := lo; i < hi; i++ {
		row[i] = !row[i]
	}
}

// invertPath inverts the interior of the closed lattice path pts.
func (g *grid) invertPath(pts []point) {
	if len(pts) == 0 {
		return
	}
	y1 := pts[len(pts)-1].y
	xa := pts[0].x
	for _, p := range pts {
		if p.y != y1 {
			g.invertRow(min(p.y, y1), p.x, xa)
			y1 = p.y
		}
	}
}

// majority reports whether set pixels outnumber clear ones in growing
// squares around the lattice point (x, y).
func (g *grid) majority(x, y int) bool {
	b := func(x, y int) int {
		if g.get(x, y) {
			return 1
		}
		return -1
	}
	for i := 2; i < 5; i++ {
		ct := 0
		for a := -i + 1; a <= i-1; a++ {
			ct += b(x+a, y+i-1)
			ct += b(x+i-1, y+a-1)
			ct += b(x+a-1, y-i)
			ct += b(x-i, y+a)
		}
		if ct > 0 {
			return true
		} else if ct < 0 {
			return false
		}
	}
	return false
}
