// Package predicates3 implements the point/segment/triangle predicates
// the BSP query relies on, generalized from the 2D mesh toolkit's
// sign-consistency style of predicate to 3D.
package predicates3

import "github.com/coredelta/bsp3d/geom3"

// PointInTriangle tests whether P lies inside or on triangle A,B,C.
//
// Computes n = (B-A) x (C-A) and the three sub-normals formed by P and
// each edge; P is inside iff n.ni have a consistent sign for i=1,2,3
// (all >= 0 or all <= 0). Boundary points qualify as inside.
func PointInTriangle(p, a, b, c geom3.Point) bool {
	ab := b.Sub(a)
	ac := c.Sub(a)
	n := ab.Cross(ac)

	pa := a.Sub(p)
	pb := b.Sub(p)
	pc := c.Sub(p)

	n1 := pb.Cross(pc)
	n2 := pc.Cross(pa)
	n3 := pa.Cross(pb)

	d1 := n.Dot(n1)
	d2 := n.Dot(n2)
	d3 := n.Dot(n3)

	return (d1 >= 0 && d2 >= 0 && d3 >= 0) || (d1 <= 0 && d2 <= 0 && d3 <= 0)
}
