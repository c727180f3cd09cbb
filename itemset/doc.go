// Package itemset defines the canonical Pattern type (a sorted,
// duplicate-free set of items), the PatternSupportMap used to collect
// mining results, and the combination helpers shared by the miner and the
// rule generator.
//
// 🚀 What is a Pattern?
//
//	A Pattern is an order-independent itemset. Whatever order the caller
//	supplies the items in, New sorts and deduplicates them, so
//	New("E","A","B") and New("B","A","E","A") are the same pattern and map
//	to the same Key().
//
// ✨ Key features:
//   - Pattern.Key()       - canonical string key for map storage
//   - Union / Difference  - set algebra over patterns
//   - SupportMap          - Pattern → support, with Set (overwrite) and Add (sum)
//   - Merge / MergeFrom   - the pattern aggregator: union of keys, sum on collisions
//   - Combinations        - k-combinations in lexicographic index order
//
// ⚙️ Usage:
//
//	sm := itemset.NewSupportMap()
//	sm.Add(itemset.New("A", "B"), 3)
//	sm.Add(itemset.New("B", "A"), 1) // same key → support 4
//
//	s, ok := sm.Support(itemset.New("A", "B")) // 4, true
//
// Complexity:
//
//   - New:        O(k log k) for k items
//   - Key:        O(k)
//   - Merge:      O(|a| + |b|)
//   - Entries:    O(n log n) (sorted snapshot)
package itemset
