package bsp

import "github.com/coredelta/bsp3d/geom3"

// config carries Build's tunables, following the teacher mesh
// package's private-config-plus-functional-options convention.
type config struct {
	epsilon float64

	onPivot func(geom3.IDTriangle)
	onSplit func(original geom3.IDTriangle, parts [][3]geom3.Point)
}

// Option configures Build.
type Option func(*config)

func newDefaultConfig() config {
	return config{epsilon: geom3.DefaultPlaneEpsilon}
}

// WithEpsilon overrides the plane-classification tolerance, which
// defaults to geom3.DefaultPlaneEpsilon. Non-positive values are
// ignored.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

// WithOnPivot installs a hook called each time a node's splitting
// triangle is chosen, useful for tracing degenerate-pivot skips.
func WithOnPivot(hook func(geom3.IDTriangle)) Option {
	return func(c *config) {
		c.onPivot = hook
	}
}

// WithOnSplit installs a hook called each time a crossing triangle is
// divided into sub-triangles.
func WithOnSplit(hook func(original geom3.IDTriangle, parts [][3]geom3.Point)) Option {
	return func(c *config) {
		c.onSplit = hook
	}
}
