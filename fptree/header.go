package fptree

// HeaderTable maps every frequent item to the first node carrying it.
// Following Node.Link from the head visits every node of that item exactly
// once, in insertion order. A per-item tail cache makes appends O(1).
type HeaderTable struct {
	items []string
	head  map[string]int32
	tail  map[string]int32
}

// newHeaderTable creates an entry (initially NoNode) for each item.
func newHeaderTable(items []string) *HeaderTable {
	h := &HeaderTable{
		items: items,
		head:  make(map[string]int32, len(items)),
		tail:  make(map[string]int32, len(items)),
	}
	for _, it := range items {
		h.head[it] = NoNode
		h.tail[it] = NoNode
	}

	return h
}

// Items returns the header items in table order.
func (h *HeaderTable) Items() []string {
	return append([]string(nil), h.items...)
}

// Len returns the number of header entries.
func (h *HeaderTable) Len() int { return len(h.items) }

// Head returns the first node of item's chain, or NoNode. The boolean is
// false when item has no entry at all.
func (h *HeaderTable) Head(item string) (int32, bool) {
	idx, ok := h.head[item]
	if !ok {
		return NoNode, false
	}
	return idx, true
}

// link appends node idx to the tail of item's chain.
func (h *HeaderTable) link(nodes []Node, item string, idx int32) {
	tail := h.tail[item]
	switch {
	case tail == NoNode:
		h.head[item] = idx
	case tail == idx:
		// already the tail; appending again would create a self-loop
		return
	default:
		nodes[tail].Link = idx
	}
	nodes[idx].Link = NoNode
	h.tail[item] = idx
}
