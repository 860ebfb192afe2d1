package geom3

// IDTriangle is an ordered triple of vertices tagged with the
// original triangle's 1-based identifier.
//
// During BSP construction the same ID may be shared by multiple
// IDTriangle records produced by splitting a straddling triangle; the
// ID is what gets reported to the query caller, never the sub-triangle
// geometry itself.
type IDTriangle struct {
	ID int
	V  [3]Point
}

// Plane builds the plane through the triangle's three vertices.
func (t IDTriangle) Plane(eps float64) (Plane, bool) {
	return PlaneOf(t.V[0], t.V[1], t.V[2], eps)
}

// Segment is an immutable line segment between two endpoints.
type Segment struct {
	P0, P1 Point
}
