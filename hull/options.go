package hull

// config carries Build's tunables, following the same private-config-
// plus-functional-options convention the BSP builder uses.
type config struct {
	visibilityEps float64
	seedEps       float64
}

// Option configures Build.
type Option func(*config)

func newDefaultConfig() config {
	return config{
		visibilityEps: 1e-7,
		seedEps:       1e-14,
	}
}

// WithVisibilityEpsilon overrides the face-visibility tolerance used
// during incremental insertion (spec ε = 1e-7).
func WithVisibilityEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.visibilityEps = eps
		}
	}
}

// WithSeedEpsilon overrides the degeneracy threshold (default 1e-14)
// used for the 3-point case's squared normal magnitude and for each
// seed-selection stage of the general case (squared distance, squared
// cross-product magnitude, absolute triple product).
func WithSeedEpsilon(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.seedEps = eps
		}
	}
}
