// Package fptree builds FP-trees: prefix-compressed tries that encode a set
// of transactions so that frequent itemsets can be mined without candidate
// generation.
//
// 🚀 What is an FP-tree?
//
//	Every transaction is reduced to its frequent items, sorted by
//	descending global frequency, and inserted as one root-to-leaf path.
//	Transactions that share a prefix share the nodes of that prefix, so
//	the tree is usually far smaller than the data. A header table links
//	all nodes carrying the same item into one chain (node-links), which is
//	what the miner walks to collect conditional pattern bases.
//
//	  root
//	   └─ B:6
//	       ├─ E:5
//	       │   ├─ A:4 ─ D:3 ...
//	       │   └─ C:1
//	       └─ D:1 ─ C:1
//
// ✨ Key features:
//   - CountFrequencies - item frequency filter (count ≥ min_support)
//   - Build / BuildWeighted - tree construction with shared prefixes
//   - HeaderTable      - item → first node, O(1) tail append per item
//   - SinglePath       - chain detection for the closed-form shortcut
//   - ConditionalPatternBase / WeightedPatternBase - prefix-path extraction
//   - Walk             - breadth-first listing with hooks (debugging)
//   - DOT              - Graphviz rendering with dashed node-links
//
// 🧱 Storage:
//
//	Nodes live in an arena ([]Node) addressed by int32 indices. Parent and
//	node-link references are indices, the root is always index 0 and
//	NoNode (-1) stands for "none". Children are owned by their parent's
//	child list; node-links never own anything.
//
// ⚙️ Usage:
//
//	tree, err := fptree.Build(transactions, 3)
//	if err != nil { /* ErrOptionViolation only */ }
//	for _, item := range tree.Header().Items() {
//	    base := tree.ConditionalPatternBase(item)
//	    ...
//	}
//
// Complexity:
//
//   - CountFrequencies: O(Σ|t|)
//   - Build:            O(Σ|t|·log|t| + Σ|t|·c) where c = children scanned per step
//   - Pattern base:     O(Σ path length) over the item's node-link chain
package fptree
