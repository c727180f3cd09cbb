// Package fpgrowth mines frequent itemsets with the FP-Growth algorithm.
//
// 🚀 What is FP-Growth?
//
//	FP-Growth compresses the transactions into an FP-tree (see package
//	fptree) and then decomposes it recursively: for every frequent item it
//	collects the item's conditional pattern base (the prefix paths that
//	lead to it), builds a smaller conditional tree from that base and mines
//	it with the item appended to the suffix. Whenever a tree degenerates
//	into a single path, all combinations of the path's items are emitted
//	directly. No candidate itemsets are generated, unlike Apriori.
//
// ✨ Key features:
//   - MineFrequentPatterns - end-to-end: transactions → PatternSupportMap
//   - Mine                 - mine an already built fptree.Tree
//   - single-path shortcut - closed-form enumeration of chain trees
//   - WithMaxLength        - cap pattern size, pruning whole sub-trees
//   - WithLogger           - zap debug tracing of the recursion
//   - WithStats            - trees built, recursion depth, shortcuts taken
//
// ⚙️ Usage:
//
//	patterns, err := fpgrowth.MineFrequentPatterns(transactions, 3)
//	if err != nil { /* ErrOptionViolation or context error */ }
//	for _, e := range patterns.Entries() {
//	    fmt.Println(e.Pattern, e.Support)
//	}
//
// Guarantees:
//
//   - Soundness: every reported pattern occurs in ≥ min_support transactions
//     and its support is exact.
//   - Completeness: every itemset with support ≥ min_support is reported.
//   - Determinism: identical inputs give identical maps.
//
// Complexity:
//
//	Worst case exponential in the number of frequent items (the output can
//	be that large); in practice bounded by the size of the conditional trees.
package fpgrowth
