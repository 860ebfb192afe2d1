package predicates3

import (
	"math"

	"github.com/coredelta/bsp3d/geom3"
)

// PointOnSegment tests whether P lies on segment A-B: colinear
// (|(P-A) x (B-A)| <= eps per component) and between A and B
// ((P-A).(P-B) <= eps).
func PointOnSegment(p, a, b geom3.Point, eps float64) bool {
	ap := p.Sub(a)
	ab := b.Sub(a)
	cr := ap.Cross(ab)
	if math.Abs(cr.X) > eps || math.Abs(cr.Y) > eps || math.Abs(cr.Z) > eps {
		return false
	}
	pb := p.Sub(b)
	return ap.Dot(pb) <= eps
}

// point2D is a coordinate pair used for the dominant-axis projection
// the parallel-segment case of IntersectSegmentTriangle relies on.
type point2D struct {
	U, V float64
}

func cross2D(o, a, b point2D) float64 {
	return (a.U-o.U)*(b.V-o.V) - (a.V-o.V)*(b.U-o.U)
}

func sign2D(x, eps float64) int {
	switch {
	case x > eps:
		return 1
	case x < -eps:
		return -1
	default:
		return 0
	}
}

func onSegment2D(a, b, c point2D) bool {
	return math.Min(a.U, b.U) <= c.U && c.U <= math.Max(a.U, b.U) &&
		math.Min(a.V, b.V) <= c.V && c.V <= math.Max(a.V, b.V)
}

// segmentsIntersect2D is the standard CCW cross-product sign test with
// a collinear-on-segment fallback, matching the source's
// segments_intersect_2d exactly.
func segmentsIntersect2D(a1, a2, b1, b2 point2D, eps float64) bool {
	d1 := cross2D(a1, a2, b1)
	d2 := cross2D(a1, a2, b2)
	d3 := cross2D(b1, b2, a1)
	d4 := cross2D(b1, b2, a2)

	if sign2D(d1, eps)*sign2D(d2, eps) < 0 && sign2D(d3, eps)*sign2D(d4, eps) < 0 {
		return true
	}
	if math.Abs(d1) < eps && onSegment2D(a1, a2, b1) {
		return true
	}
	if math.Abs(d2) < eps && onSegment2D(a1, a2, b2) {
		return true
	}
	if math.Abs(d3) < eps && onSegment2D(b1, b2, a1) {
		return true
	}
	if math.Abs(d4) < eps && onSegment2D(b1, b2, a2) {
		return true
	}
	return false
}
