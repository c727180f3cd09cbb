// Package lvmine is a toolkit for frequent itemset mining with FP-Growth:
// from raw baskets to frequent patterns to association rules.
//
// 🚀 What is lvmine?
//
//	A small set of packages that each do one job:
//		• itemset  - canonical patterns, support maps, combinations
//		• fptree   - frequency filter, FP-tree construction, node-links,
//		             conditional pattern bases, BFS walk, DOT export
//		• fpgrowth - recursive conditional-tree mining
//		• rules    - association rules with confidence and lift
//		• dataset  - CSV/JSON/YAML loaders, seeded generator, tid-set index
//		• report   - tables, JSON and YAML output
//
// ✨ Why FP-Growth?
//
//   - No candidate generation: the data is scanned twice, then everything
//     happens on the compressed tree.
//   - Exact supports: every reported count can be checked against the
//     tid-set index in package dataset.
//   - Deterministic: ties are broken by first appearance, so the same
//     input always gives the same tree, patterns and rules.
//
// Quick example:
//
//	patterns, _ := fpgrowth.MineFrequentPatterns(baskets, 3)
//	rs, _ := rules.Generate(patterns, 0.6)
//
// The lvmine command (cmd/lvmine) wraps the same pipeline:
//
//	lvmine rules -i baskets.csv -s 3 -c 0.6
package lvmine
