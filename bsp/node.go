// Package bsp implements the Binary Space Partition accelerator: a
// recursive space-subdivision structure built once over a fixed
// triangle soup and then queried repeatedly against line segments.
package bsp

import "github.com/coredelta/bsp3d/geom3"

// Node is one level of the BSP tree.
//
// Built once bottom-up during Build, read-only thereafter, and
// destroyed as a unit when the tree is dropped. Each node exclusively
// owns its two children.
type Node struct {
	Plane    geom3.Plane
	Coplanar []geom3.IDTriangle
	Positive *Node
	Negative *Node
}
