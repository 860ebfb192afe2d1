package geom3

import "math"

// Plane represents the equation a*x + b*y + c*z + d = 0.
//
// A Plane returned by PlaneOf always has a non-zero (a,b,c); planes
// are rejected (ok=false) when the source triangle is degenerate.
type Plane struct {
	A, B, C, D float64
}

// PlaneOf builds the plane through p0, p1, p2.
//
// Let n = (p1-p0) x (p2-p0). If |n.X|, |n.Y|, |n.Z| are all below eps,
// the points are treated as colinear and ok is false. This mirrors the
// source's component-wise degeneracy test exactly: it is not a
// combined-magnitude threshold.
func PlaneOf(p0, p1, p2 Point, eps float64) (plane Plane, ok bool) {
	v1 := p1.Sub(p0)
	v2 := p2.Sub(p0)
	n := v1.Cross(v2)

	if math.Abs(n.X) < eps && math.Abs(n.Y) < eps && math.Abs(n.Z) < eps {
		return Plane{}, false
	}

	d := -n.Dot(p0)
	return Plane{A: n.X, B: n.Y, C: n.Z, D: d}, true
}

// Normal returns the plane's (not necessarily unit) normal vector.
func (pl Plane) Normal() Point {
	return Point{X: pl.A, Y: pl.B, Z: pl.C}
}

// Eval evaluates the plane equation at p.
func (pl Plane) Eval(p Point) float64 {
	return pl.A*p.X + pl.B*p.Y + pl.C*p.Z + pl.D
}

// IntersectEdgePlane computes the point where edge p-q crosses the
// plane.
//
// If the edge is (near) parallel to the plane (|denom| < eps), p is
// returned unchanged — a graceful fallback the caller relies on only
// for edges already known to straddle the plane. t is not clamped to
// [0,1]; callers only invoke this on edges classified as straddling.
func IntersectEdgePlane(p, q Point, plane Plane, eps float64) Point {
	dir := q.Sub(p)
	denom := plane.A*dir.X + plane.B*dir.Y + plane.C*dir.Z
	if math.Abs(denom) < eps {
		return p
	}
	t := -plane.Eval(p) / denom
	return p.Add(dir.Scale(t))
}
