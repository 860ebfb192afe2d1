package predicates3

import (
	"testing"

	"github.com/coredelta/bsp3d/geom3"
)

func TestPointInTriangle(t *testing.T) {
	a := geom3.Point{X: 0, Y: 0, Z: 0}
	b := geom3.Point{X: 10, Y: 0, Z: 0}
	c := geom3.Point{X: 0, Y: 10, Z: 0}

	inside := geom3.Point{X: 2, Y: 2, Z: 0}
	onEdge := geom3.Point{X: 5, Y: 0, Z: 0}
	outside := geom3.Point{X: -1, Y: -1, Z: 0}

	if !PointInTriangle(inside, a, b, c) {
		t.Fatalf("expected inside point to be inside")
	}
	if !PointInTriangle(onEdge, a, b, c) {
		t.Fatalf("expected edge point to be inside")
	}
	if PointInTriangle(outside, a, b, c) {
		t.Fatalf("expected outside point to be outside")
	}
}
