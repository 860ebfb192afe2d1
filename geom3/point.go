// Package geom3 provides the pure geometric primitives the BSP and
// convex hull builders are assembled from: 3D points and planes,
// classification against a tolerance, and the edge/plane intersection
// and triangle-splitting operations that the BSP builder needs to
// divide a straddling triangle across a splitting plane.
package geom3

// Point represents a position in 3D Cartesian space.
//
// Coordinates use float64 precision. Input points are integer-valued;
// points produced by edge/plane intersection are real-valued.
// Equality is never tested on computed points directly, only
// classification with tolerance (see ClassifyPoint).
type Point struct {
	X float64 // Coordinate along the first axis
	Y float64 // Coordinate along the second axis
	Z float64 // Coordinate along the third axis
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Scale returns p scaled by t.
func (p Point) Scale(t float64) Point {
	return Point{X: p.X * t, Y: p.Y * t, Z: p.Z * t}
}

// Dot returns the dot product p . q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Dist2 returns the squared Euclidean distance between p and q.
func Dist2(p, q Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}
