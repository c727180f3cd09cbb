// types.go: the arena node, weighted paths, build options and sentinel errors.

package fptree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmine/itemset"
)

// Sentinel errors for tree construction and navigation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fptree: invalid option supplied")

	// ErrTreeNil is returned if a nil tree pointer is passed.
	ErrTreeNil = errors.New("fptree: tree is nil")
)

const (
	// RootIndex is the arena index of the root node of every tree.
	RootIndex int32 = 0

	// NoNode marks an absent parent, child or node-link.
	NoNode int32 = -1
)

// Node is one FP-tree node. Item is empty only for the root of a top-level
// tree; a conditional tree's root carries the item it was conditioned on.
// Tree.Node and Tree.Root return copies: changing Parent, Link or Count on
// a returned Node does not affect the tree.
type Node struct {
	Item   string
	Count  int
	Parent int32 // NoNode for the root
	Link   int32 // next node with the same Item, NoNode at the chain tail

	children []int32
}

// WeightedPath is a transaction that stands for Count identical ones.
// Conditional pattern bases are expressed this way to avoid materialising
// count copies of each prefix path.
type WeightedPath struct {
	Items []string
	Count int
}

// Option configures tree construction.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// RootItem is the item carried by the root (empty for a top-level tree).
	RootItem string

	// RootCount is the support recorded on the root.
	RootCount int

	// Suffix is the pattern this tree is conditioned on. Its items are
	// excluded from the tree's frequency map.
	Suffix itemset.Pattern

	err error
}

// DefaultOptions returns options for a top-level tree: empty root item,
// zero root count and no suffix.
func DefaultOptions() Options {
	return Options{
		RootItem:  "",
		RootCount: 0,
		Suffix:    itemset.Pattern{},
	}
}

// WithRoot sets the item and support count carried by the root node.
// A negative count is an ErrOptionViolation.
func WithRoot(item string, count int) Option {
	return func(o *Options) {
		if count < 0 {
			o.err = fmt.Errorf("%w: root count cannot be negative (%d)", ErrOptionViolation, count)
			return
		}
		o.RootItem = item
		o.RootCount = count
	}
}

// WithSuffix marks the tree as conditioned on suffix.
func WithSuffix(suffix itemset.Pattern) Option {
	return func(o *Options) {
		if suffix != nil {
			o.Suffix = suffix
		}
	}
}
