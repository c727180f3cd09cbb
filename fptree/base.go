package fptree

// NodeLinks returns the node-link chain of item, head first.
// Returns nil for items without a header entry.
func (t *Tree) NodeLinks(item string) []int32 {
	head, ok := t.header.Head(item)
	if !ok {
		return nil
	}
	var chain []int32
	for idx := head; idx != NoNode; idx = t.nodes[idx].Link {
		chain = append(chain, idx)
	}

	return chain
}

// PrefixPath returns the items from idx (inclusive) up to, but excluding,
// the root: the node's own item first, then its ancestors.
func (t *Tree) PrefixPath(idx int32) []string {
	var path []string
	for cur := idx; cur != NoNode && cur != RootIndex; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur].Item)
	}

	return path
}

// ConditionalPatternBase returns the conditional pattern base of item: for
// every node on its node-link chain, the node's prefix path repeated
// node.Count times. Repetitions share one backing slice.
// Items without a header entry yield nil.
// Complexity: O(Σ count) slices, O(Σ path length) items.
func (t *Tree) ConditionalPatternBase(item string) [][]string {
	var base [][]string
	for _, wp := range t.WeightedPatternBase(item) {
		for i := 0; i < wp.Count; i++ {
			base = append(base, wp.Items)
		}
	}

	return base
}

// WeightedPatternBase is ConditionalPatternBase with each prefix path
// listed once together with its multiplicity.
func (t *Tree) WeightedPatternBase(item string) []WeightedPath {
	chain := t.NodeLinks(item)
	if chain == nil {
		return nil
	}
	out := make([]WeightedPath, 0, len(chain))
	for _, idx := range chain {
		out = append(out, WeightedPath{Items: t.PrefixPath(idx), Count: t.nodes[idx].Count})
	}

	return out
}
