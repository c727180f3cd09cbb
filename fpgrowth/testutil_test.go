package fpgrowth_test

import (
	"github.com/katalvlaran/lvmine/dataset"
	"github.com/katalvlaran/lvmine/itemset"
)

// exampleTransactions is the six-basket dataset shared with the fptree tests.
func exampleTransactions() [][]string {
	return [][]string{
		{"A", "B", "D", "E"},
		{"B", "C", "E"},
		{"A", "B", "D", "E"},
		{"A", "B", "C", "E"},
		{"A", "B", "C", "D", "E"},
		{"B", "C", "D"},
	}
}

// key returns the canonical key of the given items.
func key(items ...string) string {
	return itemset.New(items...).Key()
}

// bruteForce enumerates every itemset over txs and keeps those with support
// ≥ minSupport, counting support through a tid-set index. maxLength ≤ 0
// means no size cap.
func bruteForce(txs dataset.Transactions, minSupport, maxLength int) map[string]int {
	ix := dataset.NewIndex(txs)
	items := txs.Items()
	limit := len(items)
	if maxLength > 0 && maxLength < limit {
		limit = maxLength
	}

	out := make(map[string]int)
	for k := 1; k <= limit; k++ {
		itemset.Combinations(items, k, func(combo []string) bool {
			if s := ix.Support(combo...); s >= minSupport && s > 0 {
				out[key(combo...)] = s
			}
			return true
		})
	}

	return out
}
