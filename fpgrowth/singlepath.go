package fpgrowth

import (
	"math"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/itemset"
)

// SinglePathPatterns enumerates the patterns of a single-path tree in
// closed form: every non-empty combination of the tree's frequent items,
// joined with the tree's suffix, with support equal to the smallest local
// frequency among the combination's items.
//
// The combinations range over the whole local frequency map. On a tree
// that really is a single path those are exactly the items on the path,
// and the smallest frequency is the count of the deepest node chosen.
// Calling it on a branching tree over-generates.
func SinglePathPatterns(t *fptree.Tree) *itemset.SupportMap {
	return singlePathPatterns(t, 0)
}

// singlePathPatterns is SinglePathPatterns with an optional size cap
// (maxLength ≤ 0 means none) applied to suffix+combination.
func singlePathPatterns(t *fptree.Tree, maxLength int) *itemset.SupportMap {
	out := itemset.NewSupportMap()
	freq := t.Frequencies()
	items := freq.Items()
	suffix := t.Suffix()

	maxK := len(items)
	if maxLength > 0 {
		if room := maxLength - suffix.Len(); room < maxK {
			maxK = room
		}
	}

	for k := 1; k <= maxK; k++ {
		itemset.Combinations(items, k, func(combo []string) bool {
			support := math.MaxInt
			for _, it := range combo {
				if c, _ := freq.Count(it); c < support {
					support = c
				}
			}
			out.Set(itemset.New(combo...).Union(suffix), support)
			return true
		})
	}

	return out
}
