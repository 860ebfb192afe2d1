package predicates3

import (
	"testing"

	"github.com/coredelta/bsp3d/geom3"
)

func TestPointOnSegment(t *testing.T) {
	a := geom3.Point{X: 0, Y: 0, Z: 0}
	b := geom3.Point{X: 10, Y: 0, Z: 0}

	if !PointOnSegment(geom3.Point{X: 5, Y: 0, Z: 0}, a, b, geom3.DefaultPlaneEpsilon) {
		t.Fatalf("expected midpoint to be on segment")
	}
	if PointOnSegment(geom3.Point{X: 5, Y: 1, Z: 0}, a, b, geom3.DefaultPlaneEpsilon) {
		t.Fatalf("expected off-line point to not be on segment")
	}
	if PointOnSegment(geom3.Point{X: 15, Y: 0, Z: 0}, a, b, geom3.DefaultPlaneEpsilon) {
		t.Fatalf("expected colinear point outside [a,b] to not be on segment")
	}
}

func TestSegmentsIntersect2D(t *testing.T) {
	a1 := point2D{U: 0, V: 0}
	a2 := point2D{U: 4, V: 4}
	b1 := point2D{U: 0, V: 4}
	b2 := point2D{U: 4, V: 0}

	if !segmentsIntersect2D(a1, a2, b1, b2, geom3.DefaultPlaneEpsilon) {
		t.Fatalf("expected crossing segments to intersect")
	}

	c1 := point2D{U: 10, V: 10}
	c2 := point2D{U: 20, V: 20}
	if segmentsIntersect2D(a1, a2, c1, c2, geom3.DefaultPlaneEpsilon) {
		t.Fatalf("expected disjoint segments to not intersect")
	}
}
