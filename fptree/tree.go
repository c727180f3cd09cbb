package fptree

import (
	"sort"

	"github.com/katalvlaran/lvmine/itemset"
)

// Tree is an FP-tree together with the data it was built from.
// It is immutable once Build returns.
type Tree struct {
	source     []WeightedPath
	minSupport int
	freq       *FrequencyMap
	header     *HeaderTable
	nodes      []Node
	suffix     itemset.Pattern
}

// Build constructs the FP-tree of transactions for minSupport.
// Returns ErrOptionViolation for invalid options.
//
// Steps:
//  1. Count item frequencies and drop items below minSupport.
//  2. Create the header table in first-appearance order.
//  3. For each transaction keep its frequent items, sort them by descending
//     frequency (ties by first appearance) and insert them as one path,
//     sharing any prefix already present.
func Build(transactions [][]string, minSupport int, opts ...Option) (*Tree, error) {
	paths := make([]WeightedPath, len(transactions))
	for i, tx := range transactions {
		paths[i] = WeightedPath{Items: tx, Count: 1}
	}

	return BuildWeighted(paths, minSupport, opts...)
}

// BuildWeighted is Build over weighted paths: a path with Count n is
// inserted as if it occurred n times. Paths with Count ≤ 0 are ignored.
func BuildWeighted(paths []WeightedPath, minSupport int, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	freq := countWeighted(paths, minSupport, o.Suffix)
	t := &Tree{
		source:     paths,
		minSupport: minSupport,
		freq:       freq,
		header:     newHeaderTable(freq.Items()),
		nodes:      make([]Node, 1, 1+freq.Len()),
		suffix:     o.Suffix,
	}
	t.nodes[RootIndex] = Node{Item: o.RootItem, Count: o.RootCount, Parent: NoNode, Link: NoNode}

	buf := make([]string, 0, freq.Len())
	seen := make(map[string]struct{}, freq.Len())
	for _, p := range paths {
		if p.Count <= 0 {
			continue
		}
		buf = t.frequentSorted(p.Items, buf[:0], seen)
		if len(buf) > 0 {
			t.insert(buf, p.Count)
		}
	}

	return t, nil
}

// frequentSorted filters items to the frequent ones (first occurrence only)
// and sorts them into insertion order.
func (t *Tree) frequentSorted(items, buf []string, seen map[string]struct{}) []string {
	clear(seen)
	for _, it := range items {
		if !t.freq.Has(it) {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		buf = append(buf, it)
	}
	sort.SliceStable(buf, func(i, j int) bool { return t.freq.less(buf[i], buf[j]) })

	return buf
}

// insert adds one sorted item list below the root, count times.
func (t *Tree) insert(items []string, count int) {
	cur := RootIndex
	for _, it := range items {
		child := t.child(cur, it)
		if child == NoNode {
			child = t.addChild(cur, it, count)
			t.header.link(t.nodes, it, child)
		} else {
			t.nodes[child].Count += count
		}
		cur = child
	}
}

// child returns the child of parent carrying item, or NoNode.
func (t *Tree) child(parent int32, item string) int32 {
	for _, c := range t.nodes[parent].children {
		if t.nodes[c].Item == item {
			return c
		}
	}
	return NoNode
}

// addChild appends a new node owned by parent and returns its index.
func (t *Tree) addChild(parent int32, item string, count int) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, Node{Item: item, Count: count, Parent: parent, Link: NoNode})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)

	return idx
}

// MinSupport returns the threshold the tree was built with.
func (t *Tree) MinSupport() int { return t.minSupport }

// Frequencies returns the tree-local frequency map.
func (t *Tree) Frequencies() *FrequencyMap { return t.freq }

// Header returns the header table.
func (t *Tree) Header() *HeaderTable { return t.header }

// Suffix returns the pattern this tree is conditioned on (empty at top level).
func (t *Tree) Suffix() itemset.Pattern { return t.suffix }

// Root returns a copy of the root node.
func (t *Tree) Root() Node { return t.nodes[RootIndex] }

// RootCount returns the support carried by the root.
func (t *Tree) RootCount() int { return t.nodes[RootIndex].Count }

// Source returns the weighted paths the tree was built from.
func (t *Tree) Source() []WeightedPath { return t.source }

// Size returns the number of nodes, root included.
func (t *Tree) Size() int { return len(t.nodes) }

// Empty reports whether the tree has no nodes besides the root.
func (t *Tree) Empty() bool { return len(t.nodes) == 1 }

// Node returns a copy of the node at idx; writes to it do not reach the tree.
func (t *Tree) Node(idx int32) Node { return t.nodes[idx] }

// Children returns the child indices of idx in insertion order.
func (t *Tree) Children(idx int32) []int32 {
	return append([]int32(nil), t.nodes[idx].children...)
}

// SinglePath reports whether the whole tree is one chain.
func (t *Tree) SinglePath() bool {
	return t.IsSinglePathFrom(RootIndex)
}

// IsSinglePathFrom reports whether every node of the subtree rooted at idx
// has at most one child.
// Complexity: O(depth).
func (t *Tree) IsSinglePathFrom(idx int32) bool {
	for {
		kids := t.nodes[idx].children
		switch len(kids) {
		case 0:
			return true
		case 1:
			idx = kids[0]
		default:
			return false
		}
	}
}
