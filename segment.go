package vectorize

import (
	"fmt"

	"honnef.co/go/curve"
)

// SegmentKind is the type of a [Segment]. The values match potrace's
// segment tags.
type SegmentKind int

const (
	// CurveTo is a cubic Bézier segment with control points P0 to P3.
	CurveTo SegmentKind = 1
	// Corner is a pair of straight lines P0-P1 and P1-P2.
	Corner SegmentKind = 2
)

func (k SegmentKind) String() string {
	switch k {
	case CurveTo:
		return "CurveTo"
	case Corner:
		return "Corner"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a traced path.
//
// P0 is the start of the segment and always equals the end of the
// previous segment in the same path. Corner segments use P0, P1 and P2 and
// end at P2; CurveTo segments end at P3.
type Segment struct {
	Kind           SegmentKind
	P0, P1, P2, P3 curve.Point
}

// CornerSeg returns a Corner segment through a, b and c.
func CornerSeg(a, b, c curve.Point) Segment {
	return Segment{Kind: Corner, P0: a, P1: b, P2: c}
}

// CurveSeg returns a CurveTo segment with control points p0 to p3.
func CurveSeg(p0, p1, p2, p3 curve.Point) Segment {
	return Segment{Kind: CurveTo, P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start returns the start point of the segment.
func (seg Segment) Start() curve.Point { return seg.P0 }

// End returns the end point of the segment.
func (seg Segment) End() curve.Point {
	if seg.Kind == Corner {
		return seg.P2
	}
	return seg.P3
}

// Points returns the segment's control points: three for Corner, four
// for CurveTo.
func (seg Segment) Points() []curve.Point {
	if seg.Kind == Corner {
		return []curve.Point{seg.P0, seg.P1, seg.P2}
	}
	return []curve.Point{seg.P0, seg.P1, seg.P2, seg.P3}
}

// Path is a closed sequence of segments produced by a [Tracer].
type Path struct {
	// Area enclosed by the path, in pixels.
	Area int
	// Sign is true for outer boundaries of foreground regions and false
	// for holes.
	Sign     bool
	Segments []Segment
}
