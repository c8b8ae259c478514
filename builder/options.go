// SPDX-License-Identifier: MIT
// Package: pathviz/builder
//
// options.go - functional options for BuildBoard.
//
// Option constructors panic on meaningless input; constructors never panic.

package builder

import "math/rand"

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to every constructor.
type builderConfig struct {
	// rng drives stochastic constructors; nil means none are allowed.
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh *rand.Rand, for reproducible boards.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
