package bsp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/coredelta/bsp3d/geom3"
	"github.com/coredelta/bsp3d/predicates3"
)

func tri(id int, a, b, c geom3.Point) geom3.IDTriangle {
	return geom3.IDTriangle{ID: id, V: [3]geom3.Point{a, b, c}}
}

func seg(x1, y1, z1, x2, y2, z2 float64) geom3.Segment {
	return geom3.Segment{P0: geom3.Point{X: x1, Y: y1, Z: z1}, P1: geom3.Point{X: x2, Y: y2, Z: z2}}
}

// S1 — single triangle, direct hit.
func TestScenarioS1(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 10, Y: 0, Z: 0}, geom3.Point{X: 0, Y: 10, Z: 0}),
	}
	tree := Build(triangles)
	got := Query(tree, seg(2, 2, -5, 2, 2, 5), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, []int{1})
}

// S2 — single triangle, miss.
func TestScenarioS2(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 10, Y: 0, Z: 0}, geom3.Point{X: 0, Y: 10, Z: 0}),
	}
	tree := Build(triangles)
	got := Query(tree, seg(20, 20, -5, 20, 20, 5), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, nil)
}

// S3 — coplanar segment touching an edge.
func TestScenarioS3(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 10, Y: 0, Z: 0}, geom3.Point{X: 0, Y: 10, Z: 0}),
	}
	tree := Build(triangles)
	got := Query(tree, seg(0, 0, 0, 10, 0, 0), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, []int{1})
}

// S4 — two parallel triangles, one segment hitting both.
func TestScenarioS4(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 10, Y: 0, Z: 0}, geom3.Point{X: 0, Y: 10, Z: 0}),
		tri(2, geom3.Point{X: 0, Y: 0, Z: 5}, geom3.Point{X: 10, Y: 0, Z: 5}, geom3.Point{X: 0, Y: 10, Z: 5}),
	}
	tree := Build(triangles)
	got := Query(tree, seg(2, 2, -1, 2, 2, 6), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, []int{1, 2})
}

// S5 — segment parallel to the triangle's plane, endpoints coplanar and inside.
func TestScenarioS5(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 10, Y: 0, Z: 0}, geom3.Point{X: 0, Y: 10, Z: 0}),
	}
	tree := Build(triangles)
	got := Query(tree, seg(1, 1, 0, 2, 2, 0), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, []int{1})
}

// S6 — degenerate triangle in input is skipped by the builder.
func TestScenarioS6(t *testing.T) {
	triangles := []geom3.IDTriangle{
		tri(1, geom3.Point{X: 0, Y: 0, Z: 0}, geom3.Point{X: 1, Y: 1, Z: 1}, geom3.Point{X: 2, Y: 2, Z: 2}),
	}
	tree := Build(triangles)
	if tree != nil {
		t.Fatalf("expected nil tree when only a degenerate triangle is supplied")
	}
	got := Query(tree, seg(0, 0, -5, 0, 0, 5), geom3.DefaultPlaneEpsilon)
	assertIDs(t, got, nil)
}

func assertIDs(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("result not strictly ascending: %v", got)
		}
	}
}

// bruteForce cross-checks Query against a direct scan of the original
// (unsplit) triangle soup, the reference oracle the property tests use.
func bruteForce(triangles []geom3.IDTriangle, s geom3.Segment, eps float64) []int {
	seen := make(map[int]struct{})
	for _, tr := range triangles {
		if predicates3.IntersectSegmentTriangle(s, tr.V, eps) {
			seen[tr.ID] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func TestQueryMatchesBruteForceOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	randPoint := func() geom3.Point {
		return geom3.Point{
			X: float64(rng.Intn(21) - 10),
			Y: float64(rng.Intn(21) - 10),
			Z: float64(rng.Intn(21) - 10),
		}
	}

	const numTriangles = 60
	const numSegments = 120

	triangles := make([]geom3.IDTriangle, 0, numTriangles)
	for i := 1; i <= numTriangles; i++ {
		triangles = append(triangles, tri(i, randPoint(), randPoint(), randPoint()))
	}

	tree := Build(triangles)

	for i := 0; i < numSegments; i++ {
		s := geom3.Segment{P0: randPoint(), P1: randPoint()}
		got := Query(tree, s, geom3.DefaultPlaneEpsilon)
		want := bruteForce(triangles, s, geom3.DefaultPlaneEpsilon)
		if len(got) != len(want) {
			t.Fatalf("segment %d: got %v, want %v", i, got, want)
		}
		for j := range got {
			if got[j] != want[j] {
				t.Fatalf("segment %d: got %v, want %v", i, got, want)
			}
		}
	}
}
