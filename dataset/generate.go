// SPDX-License-Identifier: MIT
// Package: lvmine/dataset
//
// generate.go: seeded synthetic market baskets.
//
// Contract:
//   - n ≥ 0 (else ErrBadSize); n == 0 returns an empty collection.
//   - rng must be set via WithSeed/WithRand (else ErrNeedRandSource).
//   - A basket size is drawn uniformly from [minBasket, min(maxBasket, items)].
//   - Items are drawn without replacement, item i with weight 1/(i+1)^skew,
//     and stored in ascending index order.
//
// Determinism:
//   - Fixed seed + options ⇒ identical output.

package dataset

import (
	"fmt"
	"math"
	"sort"
)

const methodGenerate = "Generate"

// Generate samples n synthetic baskets.
func Generate(n int, opts ...Option) (Transactions, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", methodGenerate, n, ErrBadSize)
	}
	cfg := newGenConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	if cfg.minBasket > cfg.items {
		return nil, fmt.Errorf("%s: min basket %d > items %d: %w",
			methodGenerate, cfg.minBasket, cfg.items, ErrBadSize)
	}

	hi := cfg.maxBasket
	if hi > cfg.items {
		hi = cfg.items
	}
	weights := make([]float64, cfg.items)
	for i := range weights {
		weights[i] = 1 / math.Pow(float64(i+1), cfg.skew)
	}
	labels := make([]string, cfg.items)
	for i := range labels {
		labels[i] = cfg.labelFn(i)
	}

	out := make(Transactions, n)
	picked := make([]bool, cfg.items)
	for t := 0; t < n; t++ {
		size := cfg.minBasket + cfg.rng.Intn(hi-cfg.minBasket+1)
		clear(picked)
		idx := make([]int, 0, size)
		for len(idx) < size {
			i := drawWeighted(cfg, weights, picked)
			picked[i] = true
			idx = append(idx, i)
		}
		sort.Ints(idx)
		basket := make([]string, len(idx))
		for k, i := range idx {
			basket[k] = labels[i]
		}
		out[t] = basket
	}

	return out, nil
}

// drawWeighted picks one not-yet-picked index proportionally to weights.
// At least one index must still be free.
func drawWeighted(cfg genConfig, weights []float64, picked []bool) int {
	total := 0.0
	for i, w := range weights {
		if !picked[i] {
			total += w
		}
	}
	r := cfg.rng.Float64() * total
	last := -1
	for i, w := range weights {
		if picked[i] {
			continue
		}
		last = i
		if r < w {
			return i
		}
		r -= w
	}

	// float rounding can leave r marginally positive
	return last
}
