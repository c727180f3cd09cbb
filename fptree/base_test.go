package fptree_test

import (
	"testing"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/itemset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConditionalPatternBase lists prefix paths including the item itself,
// repeated by node count.
func TestConditionalPatternBase(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	base := tree.ConditionalPatternBase("D")
	want := [][]string{
		{"D", "A", "E", "B"},
		{"D", "A", "E", "B"},
		{"D", "A", "E", "B"},
		{"D", "B"},
	}
	assert.Equal(t, want, base)

	assert.Equal(t, [][]string{{"B"}, {"B"}, {"B"}, {"B"}, {"B"}, {"B"}}, tree.ConditionalPatternBase("B"))
	assert.Nil(t, tree.ConditionalPatternBase("missing"))
}

// TestWeightedPatternBase returns one entry per chain node.
func TestWeightedPatternBase(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	got := tree.WeightedPatternBase("C")
	want := []fptree.WeightedPath{
		{Items: []string{"C", "E", "B"}, Count: 1},
		{Items: []string{"C", "A", "E", "B"}, Count: 1},
		{Items: []string{"C", "D", "A", "E", "B"}, Count: 1},
		{Items: []string{"C", "D", "B"}, Count: 1},
	}
	assert.Equal(t, want, got)
}

// TestConditionalTree builds the conditional tree of D the way the miner
// does: the suffix item is excluded and carried by the root.
func TestConditionalTree(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	count, _ := tree.Frequencies().Count("D")
	cond, err := fptree.BuildWeighted(
		tree.WeightedPatternBase("D"),
		tree.MinSupport(),
		fptree.WithRoot("D", count),
		fptree.WithSuffix(itemset.New("D")),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, cond.RootCount())
	assert.True(t, cond.SinglePath())
	// B:4 → A:3 → E:3
	res, err := fptree.Walk(cond)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "E"}, res.Items())
	assert.Equal(t, 4, res.Visits[0].Count)
	assert.Equal(t, 3, res.Visits[2].Count)
}

// TestWeightedBaseMatchesRepeated builds conditional trees from both base
// forms and expects identical trees.
func TestWeightedBaseMatchesRepeated(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	for _, item := range tree.Header().Items() {
		count, _ := tree.Frequencies().Count(item)
		opts := []fptree.Option{fptree.WithRoot(item, count), fptree.WithSuffix(itemset.New(item))}

		weighted, err := fptree.BuildWeighted(tree.WeightedPatternBase(item), tree.MinSupport(), opts...)
		require.NoError(t, err)
		repeated, err := fptree.Build(tree.ConditionalPatternBase(item), tree.MinSupport(), opts...)
		require.NoError(t, err)

		w, err := fptree.Walk(weighted)
		require.NoError(t, err)
		r, err := fptree.Walk(repeated)
		require.NoError(t, err)
		assert.Equal(t, r.Visits, w.Visits, item)
		assert.Equal(t, repeated.Frequencies().Items(), weighted.Frequencies().Items(), item)
	}
}
