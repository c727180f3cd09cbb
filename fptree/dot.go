package fptree

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "fptree"

// DOT renders t in Graphviz format. Parent→child edges are solid and
// labelled nodes show "item:count"; node-links are drawn dashed and do not
// constrain the layout.
func DOT(t *Tree) (string, error) {
	if t == nil {
		return "", ErrTreeNil
	}

	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", fmt.Errorf("fptree: DOT: %w", err)
	}
	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("fptree: DOT: %w", err)
	}

	for i, n := range t.nodes {
		label := fmt.Sprintf("%s:%d", n.Item, n.Count)
		if int32(i) == RootIndex && n.Item == "" {
			label = "root"
		}
		attrs := map[string]string{"label": fmt.Sprintf("%q", label)}
		if err := g.AddNode(dotGraphName, dotID(int32(i)), attrs); err != nil {
			return "", fmt.Errorf("fptree: DOT: node %d: %w", i, err)
		}
	}
	for i, n := range t.nodes {
		for _, c := range n.children {
			if err := g.AddEdge(dotID(int32(i)), dotID(c), true, nil); err != nil {
				return "", fmt.Errorf("fptree: DOT: edge %d→%d: %w", i, c, err)
			}
		}
	}
	for i, n := range t.nodes {
		if n.Link == NoNode {
			continue
		}
		attrs := map[string]string{"style": "dashed", "constraint": "false"}
		if err := g.AddEdge(dotID(int32(i)), dotID(n.Link), true, attrs); err != nil {
			return "", fmt.Errorf("fptree: DOT: link %d→%d: %w", i, n.Link, err)
		}
	}

	return g.String(), nil
}

func dotID(idx int32) string {
	return fmt.Sprintf("n%d", idx)
}
