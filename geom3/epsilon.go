package geom3

import "math"

// Epsilon stores absolute and relative tolerances for geometric
// operations, adapted from the 2D mesh toolkit this package is
// descended from to operate on 3D points.
//
// The combined tolerance for a coordinate with magnitude |v| is
// computed as:
//
//	tol(v) = Abs + Rel * |v|
//
// The BSP core uses a single fixed absolute tolerance (see
// DefaultPlaneEpsilon) and the convex hull takes plain float64
// tolerances; neither uses Epsilon. It is available to callers that
// want tolerance to scale with input magnitude. Negative tolerance
// values are replaced by their magnitude.
type Epsilon struct {
	Abs float64
	Rel float64
}

// DefaultPlaneEpsilon is the fixed absolute tolerance the BSP plane
// classification, degenerate-normal detection, edge/plane parallelism,
// colinearity, and between-ness tests all share (spec ε = 1e-10).
const DefaultPlaneEpsilon = 1e-10

// DefaultHullVisibilityEpsilon is the tolerance used by the convex
// hull's face-visibility test (spec ε = 1e-7).
const DefaultHullVisibilityEpsilon = 1e-7

// NewEpsilon constructs an Epsilon value with the provided parameters.
func NewEpsilon(abs, rel float64) Epsilon {
	return Epsilon{Abs: abs, Rel: rel}.normalized()
}

// Value computes the combined tolerance for the supplied coordinate magnitude.
func (e Epsilon) Value(mag float64) float64 {
	e = e.normalized()
	return e.Abs + e.Rel*mag
}

// TolForPoints computes the tolerance to use when comparing any of the
// given points. It takes the maximum absolute coordinate across all
// points and applies the combined tolerance.
func (e Epsilon) TolForPoints(points ...Point) float64 {
	if len(points) == 0 {
		return e.Value(0)
	}
	maxMag := 0.0
	for _, p := range points {
		for _, v := range [3]float64{p.X, p.Y, p.Z} {
			if mag := math.Abs(v); mag > maxMag {
				maxMag = mag
			}
		}
	}
	return e.Value(maxMag)
}

func (e Epsilon) normalized() Epsilon {
	if e.Abs < 0 {
		e.Abs = -e.Abs
	}
	if e.Rel < 0 {
		e.Rel = -e.Rel
	}
	return e
}
