package fpgrowth

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/itemset"
	"go.uber.org/zap"
)

// miner carries the resolved options and counters through one run.
type miner struct {
	opts  Options
	log   *zap.Logger
	stats Stats
}

// MineFrequentPatterns builds the FP-tree of transactions and mines every
// itemset that occurs in at least minSupport transactions.
// An empty input, or one without frequent items, yields an empty map.
// A minSupport ≤ 0 lets every item pass the frequency filter.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - the context error if mining was cancelled.
func MineFrequentPatterns(transactions [][]string, minSupport int, opts ...Option) (*itemset.SupportMap, error) {
	tree, err := fptree.Build(transactions, minSupport)
	if err != nil {
		return nil, fmt.Errorf("fpgrowth: build tree: %w", err)
	}

	return Mine(tree, opts...)
}

// Mine enumerates the frequent patterns of an already built tree.
//
// Algorithm Outline:
//  1. If the tree carries a suffix, the suffix itself is a pattern with the
//     root's count as support.
//  2. If the tree is a single path, emit every combination of its items
//     joined with the suffix (SinglePathPatterns).
//  3. Otherwise, for every header item: take its conditional pattern base,
//     build a conditional tree whose root carries the item and its count,
//     extend the suffix with the item, recurse and merge the results.
func Mine(tree *fptree.Tree, opts ...Option) (*itemset.SupportMap, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := &miner{opts: o, log: o.Logger}
	start := time.Now()
	out, err := m.mine(tree, 0)
	if err != nil {
		return nil, err
	}

	m.stats.Patterns = out.Len()
	if o.Stats != nil {
		*o.Stats = m.stats
	}
	m.log.Debug("fpgrowth: mining finished",
		zap.Int("patterns", m.stats.Patterns),
		zap.Int("trees_built", m.stats.TreesBuilt),
		zap.Int("single_path_hits", m.stats.SinglePathHits),
		zap.Int("max_depth", m.stats.MaxDepth),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// mine is one level of the recursion. The returned map is owned by the
// caller and never touched again here.
func (m *miner) mine(t *fptree.Tree, depth int) (*itemset.SupportMap, error) {
	if depth > m.stats.MaxDepth {
		m.stats.MaxDepth = depth
	}

	out := itemset.NewSupportMap()
	suffix := t.Suffix()
	if suffix.Len() > 0 {
		out.Set(suffix, t.RootCount())
	}

	if t.SinglePath() {
		m.stats.SinglePathHits++
		out.MergeFrom(singlePathPatterns(t, m.opts.MaxLength))
		return out, nil
	}

	for _, item := range t.Header().Items() {
		if err := m.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		count, _ := t.Frequencies().Count(item)
		next := suffix.Union(itemset.Pattern{item})
		if m.opts.MaxLength > 0 && next.Len() >= m.opts.MaxLength {
			// nothing longer may be reported, so skip the sub-tree.
			// Header items are distinct, so next is unique among siblings
			// and Add never sums two values for it.
			out.Add(next, count)
			continue
		}

		base := t.WeightedPatternBase(item)
		cond, err := fptree.BuildWeighted(base, t.MinSupport(),
			fptree.WithRoot(item, count),
			fptree.WithSuffix(next),
		)
		if err != nil {
			return nil, fmt.Errorf("fpgrowth: conditional tree of %q: %w", item, err)
		}
		m.stats.TreesBuilt++
		m.log.Debug("fpgrowth: conditional tree",
			zap.Int("depth", depth+1),
			zap.Stringer("suffix", next),
			zap.Int("support", count),
			zap.Int("base_paths", len(base)),
			zap.Int("nodes", cond.Size()),
		)

		sub, err := m.mine(cond, depth+1)
		if err != nil {
			return nil, err
		}
		out.MergeFrom(sub)
	}

	return out, nil
}
