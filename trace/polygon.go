package trace

import "math"

// maxDeviation is the largest distance, in pixels and measured in the
// maximum norm, between a boundary point and the polygon edge that
// replaces it.
const maxDeviation = 0.5

// polygon approximates the closed path pts by a polygon and returns the
// indices of its vertices. Starting at pts[0], each edge is extended for
// as long as it stays straight.
func polygon(pts []point) []int {
	n := len(pts)
	var idx []int
	for i := 0; i < n; {
		idx = append(idx, i)
		j := i + 1
		for j < n && straight(pts, i, j+1) {
			j++
		}
		i = j
	}
	if len(idx) < 3 {
		idx = idx[:0]
		for i := range pts {
			idx = append(idx, i)
		}
	}
	return idx
}

// straight reports whether the points i..j of the closed path pts lie
// within maxDeviation of the line from pts[i] to pts[j]. j may equal
// len(pts), referring to pts[0].
func straight(pts []point, i, j int) bool {
	n := len(pts)
	a, b := pts[i], pts[j%n]
	dx, dy := float64(b.x-a.x), float64(b.y-a.y)
	l := math.Abs(dx) + math.Abs(dy)
	if l == 0 {
		return false
	}
	// A straight run never moves in all four directions.
	var dirs [4]bool
	for k := i; k < j; k++ {
		p, q := pts[k%n], pts[(k+1)%n]
		dirs[direction(q.x-p.x, q.y-p.y)] = true
		if k == i {
			continue
		}
		d := (float64(p.x-a.x)*dy - float64(p.y-a.y)*dx) / l
		if math.Abs(d) > maxDeviation {
			return false
		}
	}
	return !(dirs[0] && dirs[1] && dirs[2] && dirs[3])
}

func direction(dx, dy int) int {
	switch {
	case dx > 0:
		return 0
	case dy > 0:
		return 1
	case dx < 0:
		return 2
	default:
		return 3
	}
}
