// Package dataset provides transaction collections for the miner: loaders
// for CSV, JSON and YAML files, a seeded synthetic basket generator, and a
// vertical tid-set index that computes the exact support of any itemset.
//
// The package offers the following key components:
//
//   - Transactions:    [][]string with helpers (Items, Len, Clone, Normalize).
//   - Loaders:
//     – Load(r, format, opts...)   read from any io.Reader.
//     – LoadFile(path, opts...)    format inferred from the file extension.
//   - Generator (functional options, builder style):
//     – Generate(n, opts...)       n random baskets over a skewed item pool.
//     – WithSeed / WithRand        explicit, reproducible randomness.
//     – WithItems / WithBasketSize / WithSkew / WithLabels.
//   - Label schemes (LabelFn implementations):
//     – DecimalLabel, SymbolLabel, ExcelLabel, PrefixLabel(prefix).
//   - Index:
//     – NewIndex(txs)              one bit set of transaction ids per item.
//     – (*Index).Support(items...) exact support by bit-set intersection.
//
// Guarantees:
//
//   - Loaders drop blank cells and repeated items inside a transaction,
//     keeping the first occurrence order.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; runtime errors are sentinel errors wrapped with %w.
//   - Generate is deterministic for a fixed seed and option list.
package dataset
