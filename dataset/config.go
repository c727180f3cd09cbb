// SPDX-License-Identifier: MIT
// Package: lvmine/dataset
//
// config.go: generator configuration and deterministic defaults.
//
// Defaults:
//   • labelFn   = ExcelLabel       ("A","B",…,"AA")
//   • rng       = nil              (Generate fails with ErrNeedRandSource)
//   • items     = 10
//   • basket    = [1, 5]
//   • skew      = 1.0

package dataset

import (
	"math/rand"
)

const (
	defaultItems     = 10
	defaultMinBasket = 1
	defaultMaxBasket = 5
	defaultSkew      = 1.0
)

// genConfig aggregates every generator knob. Passed by value.
type genConfig struct {
	labelFn   LabelFn
	rng       *rand.Rand
	items     int
	minBasket int
	maxBasket int
	skew      float64
}

// newGenConfig applies opts over the defaults; later options win.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		labelFn:   ExcelLabel,
		rng:       nil,
		items:     defaultItems,
		minBasket: defaultMinBasket,
		maxBasket: defaultMaxBasket,
		skew:      defaultSkew,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
