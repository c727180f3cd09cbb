// SPDX-License-Identifier: MIT
// Package: lvmine/dataset
//
// errors.go: sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by redefining sentinels.
//   • Generators and loaders never panic at runtime; validation panics are
//     confined to option constructors (WithX...).

package dataset

import "errors"

// ErrUnknownFormat indicates an input format that no loader understands.
var ErrUnknownFormat = errors.New("dataset: unknown format")

// ErrParse indicates malformed input for the selected format.
var ErrParse = errors.New("dataset: parse error")

// ErrBadSize indicates an invalid size parameter (e.g. n < 0, items < 1,
// basket bounds out of order).
var ErrBadSize = errors.New("dataset: invalid size")

// ErrNeedRandSource indicates that Generate was called without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("dataset: rng is required")
