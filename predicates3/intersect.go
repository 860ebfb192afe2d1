package predicates3

import (
	"math"

	"github.com/coredelta/bsp3d/geom3"
)

// IntersectSegmentTriangle tests whether segment seg intersects
// triangle tri.
//
// Builds the triangle's plane; if degenerate, returns false. For a
// segment not parallel to the plane, solves the parametric hit point
// and checks it lands in [0,1] and inside the triangle. For a parallel
// segment, falls back to coplanar-endpoint-inside tests, triangle
// vertex-on-segment tests, and — when both endpoints are coplanar with
// the triangle — a 2D projection of segment and triangle edges onto
// the coordinate plane orthogonal to the plane normal's dominant axis.
func IntersectSegmentTriangle(seg geom3.Segment, tri [3]geom3.Point, eps float64) bool {
	plane, ok := geom3.PlaneOf(tri[0], tri[1], tri[2], eps)
	if !ok {
		return false
	}

	p0, p1 := seg.P0, seg.P1
	dir := p1.Sub(p0)
	denom := plane.A*dir.X + plane.B*dir.Y + plane.C*dir.Z

	if math.Abs(denom) >= eps {
		t := -plane.Eval(p0) / denom
		if t < 0.0 || t > 1.0 {
			return false
		}
		hit := p0.Add(dir.Scale(t))
		return PointInTriangle(hit, tri[0], tri[1], tri[2])
	}

	return intersectParallel(p0, p1, tri, plane, eps)
}

func intersectParallel(p0, p1 geom3.Point, tri [3]geom3.Point, plane geom3.Plane, eps float64) bool {
	coplanar0 := geom3.ClassifyPoint(plane, p0, eps) == geom3.Coplanar
	coplanar1 := geom3.ClassifyPoint(plane, p1, eps) == geom3.Coplanar

	if coplanar0 && PointInTriangle(p0, tri[0], tri[1], tri[2]) {
		return true
	}
	if coplanar1 && PointInTriangle(p1, tri[0], tri[1], tri[2]) {
		return true
	}

	for _, q := range tri {
		if PointOnSegment(q, p0, p1, eps) {
			return true
		}
	}

	if !(coplanar0 && coplanar1) {
		return false
	}

	normal := plane.Normal()
	axis := dominantAxis(normal)
	project := func(p geom3.Point) point2D {
		switch axis {
		case 0:
			return point2D{U: p.Y, V: p.Z}
		case 1:
			return point2D{U: p.X, V: p.Z}
		default:
			return point2D{U: p.X, V: p.Y}
		}
	}

	segU, segV := project(p0), project(p1)
	triProj := [3]point2D{project(tri[0]), project(tri[1]), project(tri[2])}
	edges := [3][2]point2D{
		{triProj[0], triProj[1]},
		{triProj[1], triProj[2]},
		{triProj[2], triProj[0]},
	}
	for _, e := range edges {
		if segmentsIntersect2D(segU, segV, e[0], e[1], eps) {
			return true
		}
	}
	return false
}

// dominantAxis returns the index (0=X, 1=Y, 2=Z) of the normal's
// largest-magnitude component, used to pick the coordinate plane to
// project onto.
func dominantAxis(n geom3.Point) int {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return 0
	case ay >= ax && ay >= az:
		return 1
	default:
		return 2
	}
}
