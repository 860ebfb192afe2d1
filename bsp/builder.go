package bsp

import "github.com/coredelta/bsp3d/geom3"

// Build constructs a BSP tree from a flat triangle soup.
//
// The first non-degenerate triangle in the slice becomes the node's
// splitting plane; degenerate (colinear) candidates are discarded and
// the next triangle is tried. Remaining triangles are classified
// against that plane: coplanar triangles join the node directly,
// one-sided triangles are bucketed for their child subtree, and
// crossing triangles are split (geom3.SplitTriangle) with each
// fragment re-classified and routed — a fragment may itself land back
// at the node as coplanar. Build recurses on the positive and negative
// buckets. An empty slice (after discarding all degenerate candidates)
// produces a nil tree.
//
// There is no balance heuristic: the pivot is always the first
// surviving triangle.
func Build(triangles []geom3.IDTriangle, opts ...Option) *Node {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return build(triangles, &cfg)
}

func build(triangles []geom3.IDTriangle, cfg *config) *Node {
	if len(triangles) == 0 {
		return nil
	}

	pivot := triangles[0]
	plane, ok := pivot.Plane(cfg.epsilon)
	if !ok {
		return build(triangles[1:], cfg)
	}
	if cfg.onPivot != nil {
		cfg.onPivot(pivot)
	}

	node := &Node{
		Plane:    plane,
		Coplanar: []geom3.IDTriangle{pivot},
	}

	var posBucket, negBucket []geom3.IDTriangle

	route := func(id int, class geom3.Classification, v [3]geom3.Point) {
		switch class {
		case geom3.Coplanar:
			node.Coplanar = append(node.Coplanar, geom3.IDTriangle{ID: id, V: v})
		case geom3.Positive:
			posBucket = append(posBucket, geom3.IDTriangle{ID: id, V: v})
		case geom3.Negative:
			negBucket = append(negBucket, geom3.IDTriangle{ID: id, V: v})
		}
	}

	for _, tri := range triangles[1:] {
		class := geom3.ClassifyTriangle(plane, tri.V, cfg.epsilon)
		switch class {
		case geom3.Crossing:
			parts := geom3.SplitTriangle(tri.V, plane, cfg.epsilon)
			if cfg.onSplit != nil {
				cfg.onSplit(tri, parts)
			}
			for _, part := range parts {
				partClass := geom3.ClassifyTriangle(plane, part, cfg.epsilon)
				route(tri.ID, partClass, part)
			}
		default:
			route(tri.ID, class, tri.V)
		}
	}

	node.Positive = build(posBucket, cfg)
	node.Negative = build(negBucket, cfg)
	return node
}
