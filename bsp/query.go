package bsp

import (
	"sort"

	"github.com/coredelta/bsp3d/geom3"
	"github.com/coredelta/bsp3d/predicates3"
)

// Query returns the sorted, deduplicated set of triangle ids that seg
// intersects in the tree rooted at node.
//
// At every visited node, every coplanar triangle stored there is
// tested directly. The segment's endpoints are then classified
// against the node's plane to pick which subtree(s) to descend into:
// both endpoints Positive-or-Coplanar descends only into Positive;
// both Negative-or-Coplanar descends only into Negative; otherwise
// (the segment straddles the plane) both subtrees are visited. A
// segment with both endpoints exactly Coplanar takes the Positive
// branch — a deliberate tie-break. Triangles stored at this node are
// still tested directly, but triangles (or split fragments) reachable
// only through the Negative subtree are not tested for such a segment,
// so a hit on one of them is not reported.
func Query(node *Node, seg geom3.Segment, eps float64) []int {
	hits := make(map[int]struct{})
	query(node, seg, eps, hits)

	out := make([]int, 0, len(hits))
	for id := range hits {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func query(node *Node, seg geom3.Segment, eps float64, hits map[int]struct{}) {
	if node == nil {
		return
	}

	for _, tri := range node.Coplanar {
		if predicates3.IntersectSegmentTriangle(seg, tri.V, eps) {
			hits[tri.ID] = struct{}{}
		}
	}

	side0 := geom3.ClassifyPoint(node.Plane, seg.P0, eps)
	side1 := geom3.ClassifyPoint(node.Plane, seg.P1, eps)

	onPositiveSide := func(c geom3.Classification) bool { return c == geom3.Positive || c == geom3.Coplanar }
	onNegativeSide := func(c geom3.Classification) bool { return c == geom3.Negative || c == geom3.Coplanar }

	switch {
	case onPositiveSide(side0) && onPositiveSide(side1):
		query(node.Positive, seg, eps, hits)
	case onNegativeSide(side0) && onNegativeSide(side1):
		query(node.Negative, seg, eps, hits)
	default:
		query(node.Positive, seg, eps, hits)
		query(node.Negative, seg, eps, hits)
	}
}
