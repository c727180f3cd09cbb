package dataset

import (
	"github.com/yourbasic/bit"
)

// Index is a vertical view of a transaction collection: for every item the
// set of transaction ids containing it. It answers exact support queries
// independently of any tree, which makes it the reference the miner's
// results are checked against.
type Index struct {
	n    int
	tids map[string]*bit.Set
}

// NewIndex builds the tid-set index of txs.
// Complexity: O(Σ|t|) time, O(items · n / 64) space.
func NewIndex(txs Transactions) *Index {
	ix := &Index{n: len(txs), tids: make(map[string]*bit.Set)}
	for tid, tx := range txs {
		for _, it := range tx {
			s, ok := ix.tids[it]
			if !ok {
				s = bit.New()
				ix.tids[it] = s
			}
			s.Add(tid)
		}
	}

	return ix
}

// Len returns the number of indexed transactions.
func (ix *Index) Len() int { return ix.n }

// Items returns the number of distinct items.
func (ix *Index) Items() int { return len(ix.tids) }

// Support returns the number of transactions containing every item.
// The empty itemset is contained in every transaction.
// Complexity: O(k · n / 64) for k items.
func (ix *Index) Support(items ...string) int {
	if len(items) == 0 {
		return ix.n
	}
	first, ok := ix.tids[items[0]]
	if !ok {
		return 0
	}
	acc := bit.New().Set(first)
	for _, it := range items[1:] {
		s, ok := ix.tids[it]
		if !ok {
			return 0
		}
		acc.SetAnd(acc, s)
		if acc.Empty() {
			return 0
		}
	}

	return acc.Size()
}

// Transactions returns the ids of the transactions containing every item.
func (ix *Index) Transactions(items ...string) []int {
	if len(items) == 0 {
		out := make([]int, ix.n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	acc := bit.New()
	if first, ok := ix.tids[items[0]]; ok {
		acc.Set(first)
	}
	for _, it := range items[1:] {
		s, ok := ix.tids[it]
		if !ok {
			return nil
		}
		acc.SetAnd(acc, s)
	}

	var out []int
	acc.Visit(func(n int) bool {
		out = append(out, n)
		return false
	})

	return out
}
