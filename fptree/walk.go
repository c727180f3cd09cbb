package fptree

import (
	"context"
	"fmt"
)

// WalkOption configures Walk via functional arguments.
// If an option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Walk is invoked.
type WalkOption func(*WalkOptions)

// WalkOptions holds parameters and callbacks to customize a breadth-first walk.
type WalkOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every visited node. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(v Visit) error

	// MaxDepth, if > 0, stops exploring below this depth (root children
	// are depth 1). A value of 0 means no limit.
	MaxDepth int

	err error
}

// DefaultWalkOptions returns a WalkOptions with background context, no
// depth limit and a no-op hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Ctx:      context.Background(),
		OnVisit:  func(Visit) error { return nil },
		MaxDepth: 0,
	}
}

// WithWalkContext sets a custom context for cancellation.
func WithWalkContext(ctx context.Context) WalkOption {
	return func(o *WalkOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every node; returning an error
// stops the walk.
func WithOnVisit(fn func(v Visit) error) WalkOption {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to nodes at depth ≤ d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) WalkOption {
	return func(o *WalkOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Visit describes one node reached by Walk.
type Visit struct {
	Index  int32
	Parent int32
	Item   string
	Count  int
	Depth  int
}

// WalkResult lists the visited nodes in breadth-first order.
type WalkResult struct {
	Visits []Visit
}

// Items returns the item labels in visit order.
func (r *WalkResult) Items() []string {
	out := make([]string, len(r.Visits))
	for i, v := range r.Visits {
		out[i] = v.Item
	}

	return out
}

// Walk traverses t breadth-first, starting with the root's children and
// visiting siblings in insertion order. The root itself is not reported.
// Returns ErrTreeNil, ErrOptionViolation, the context error, or any hook error.
func Walk(t *Tree, opts ...WalkOption) (*WalkResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	type queued struct {
		idx   int32
		depth int
	}
	res := &WalkResult{Visits: make([]Visit, 0, len(t.nodes)-1)}
	queue := make([]queued, 0, len(t.nodes))
	for _, c := range t.nodes[RootIndex].children {
		queue = append(queue, queued{idx: c, depth: 1})
	}

	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return res, o.Ctx.Err()
		default:
		}

		q := queue[0]
		queue = queue[1:]
		n := t.nodes[q.idx]
		v := Visit{Index: q.idx, Parent: n.Parent, Item: n.Item, Count: n.Count, Depth: q.depth}
		res.Visits = append(res.Visits, v)
		if err := o.OnVisit(v); err != nil {
			return res, fmt.Errorf("fptree: OnVisit error at node %d: %w", q.idx, err)
		}

		if o.MaxDepth > 0 && q.depth+1 > o.MaxDepth {
			continue
		}
		for _, c := range n.children {
			queue = append(queue, queued{idx: c, depth: q.depth + 1})
		}
	}

	return res, nil
}
