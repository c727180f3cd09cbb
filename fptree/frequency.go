package fptree

// FrequencyMap holds the frequent items of one transaction set together
// with their counts. Items() preserves first-appearance order, which is the
// iteration order of the header table and the tie-break when sorting
// items of equal frequency.
type FrequencyMap struct {
	order  []string
	counts map[string]int
	rank   map[string]int
}

// CountFrequencies counts, for every item, the number of transactions it
// occurs in and keeps only items with count ≥ minSupport. Items listed in
// exclude are ignored. A repeated item inside one transaction is counted
// once.
// Complexity: O(Σ|t|) time, O(distinct items) space.
func CountFrequencies(transactions [][]string, minSupport int, exclude ...string) *FrequencyMap {
	paths := make([]WeightedPath, len(transactions))
	for i, tx := range transactions {
		paths[i] = WeightedPath{Items: tx, Count: 1}
	}

	return countWeighted(paths, minSupport, exclude)
}

// countWeighted is CountFrequencies over weighted paths.
func countWeighted(paths []WeightedPath, minSupport int, exclude []string) *FrequencyMap {
	skip := make(map[string]struct{}, len(exclude))
	for _, it := range exclude {
		skip[it] = struct{}{}
	}

	var (
		order  []string
		counts = make(map[string]int)
		seen   = make(map[string]struct{})
	)
	for _, p := range paths {
		if p.Count <= 0 {
			continue
		}
		clear(seen)
		for _, it := range p.Items {
			if _, drop := skip[it]; drop {
				continue
			}
			if _, dup := seen[it]; dup {
				continue
			}
			seen[it] = struct{}{}
			if _, known := counts[it]; !known {
				order = append(order, it)
			}
			counts[it] += p.Count
		}
	}

	f := &FrequencyMap{
		order:  make([]string, 0, len(order)),
		counts: make(map[string]int, len(order)),
		rank:   make(map[string]int, len(order)),
	}
	for _, it := range order {
		if c := counts[it]; c >= minSupport {
			f.rank[it] = len(f.order)
			f.order = append(f.order, it)
			f.counts[it] = c
		}
	}

	return f
}

// Count returns the frequency of item and whether it is frequent.
func (f *FrequencyMap) Count(item string) (int, bool) {
	c, ok := f.counts[item]
	return c, ok
}

// Has reports whether item is frequent.
func (f *FrequencyMap) Has(item string) bool {
	_, ok := f.counts[item]
	return ok
}

// Len returns the number of frequent items.
func (f *FrequencyMap) Len() int { return len(f.order) }

// Items returns the frequent items in first-appearance order.
func (f *FrequencyMap) Items() []string {
	return append([]string(nil), f.order...)
}

// Rank returns the first-appearance position of item, or -1.
func (f *FrequencyMap) Rank(item string) int {
	if r, ok := f.rank[item]; ok {
		return r
	}
	return -1
}

// Each calls fn for every frequent item in first-appearance order.
func (f *FrequencyMap) Each(fn func(item string, count int)) {
	for _, it := range f.order {
		fn(it, f.counts[it])
	}
}

// less orders items by descending count, then by first appearance.
func (f *FrequencyMap) less(a, b string) bool {
	ca, cb := f.counts[a], f.counts[b]
	if ca != cb {
		return ca > cb
	}
	return f.rank[a] < f.rank[b]
}
