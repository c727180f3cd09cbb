// SPDX-License-Identifier: MIT
// Package: lvmine/dataset
//
// options.go: functional options for the basket generator.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package dataset

import (
	"math/rand"
)

// Option customizes Generate by mutating a genConfig before sampling.
type Option func(*genConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithItems sets the size of the item pool. Panics if k < 1.
func WithItems(k int) Option {
	if k < 1 {
		panic("dataset: WithItems(k<1)")
	}
	return func(c *genConfig) {
		c.items = k
	}
}

// WithBasketSize bounds the number of distinct items per basket.
// Panics if lo < 0 or hi < lo.
func WithBasketSize(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic("dataset: WithBasketSize(lo<0 || hi<lo)")
	}
	return func(c *genConfig) {
		c.minBasket, c.maxBasket = lo, hi
	}
}

// WithSkew sets the Zipf-like exponent s ≥ 0: item i is drawn with weight
// 1/(i+1)^s. Zero means uniform. Panics if s < 0.
func WithSkew(s float64) Option {
	if s < 0 {
		panic("dataset: WithSkew(s<0)")
	}
	return func(c *genConfig) {
		c.skew = s
	}
}

// WithLabels overrides the item naming scheme. Panics on nil.
func WithLabels(fn LabelFn) Option {
	if fn == nil {
		panic("dataset: WithLabels(nil)")
	}
	return func(c *genConfig) {
		c.labelFn = fn
	}
}
