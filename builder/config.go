// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn      ("0","1","2",...)
//   - rng      = nil              (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)
//   - spacing  = 1.0              (grid coordinate step)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn
	spacing  float64 // grid coordinate step, > 0
}

const defaultSpacing = 1.0

// newBuilderConfig applies opts in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight from the configured generator.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
