package fpgrowth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for mining.
var (
	// ErrNilTree is returned when Mine receives a nil tree.
	ErrNilTree = errors.New("fpgrowth: tree is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fpgrowth: invalid option supplied")
)

// Option configures mining via functional arguments.
type Option func(*Options)

// Options holds mining parameters.
type Options struct {
	// Ctx is checked between header items; cancelling it aborts mining.
	Ctx context.Context

	// Logger receives debug traces of the recursion.
	Logger *zap.Logger

	// MaxLength, if > 0, drops patterns with more items.
	MaxLength int

	// Stats, if non-nil, is filled with counters about the run.
	Stats *Stats

	err error
}

// Stats describes the work done by one mining run.
type Stats struct {
	TreesBuilt     int // conditional trees constructed (top-level tree excluded)
	SinglePathHits int // trees resolved by the closed-form shortcut
	MaxDepth       int // deepest recursion level reached (top level is 0)
	Patterns       int // patterns in the final map
}

// DefaultOptions returns background context, a no-op logger and no length cap.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Logger:    zap.NewNop(),
		MaxLength: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLength keeps only patterns of at most n items.
//
//	n > 0: cap at n
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxLength = n
	}
}

// WithStats asks the miner to fill s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
