package fptree_test

import (
	"testing"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/itemset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_SharedPrefixes verifies node layout, counts and root defaults.
func TestBuild_SharedPrefixes(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	assert.Equal(t, 10, tree.Size(), "root + 9 nodes")
	assert.Equal(t, 3, tree.MinSupport())
	assert.Equal(t, "", tree.Root().Item)
	assert.Equal(t, 0, tree.RootCount())
	assert.Equal(t, 0, tree.Suffix().Len())

	rootKids := tree.Children(fptree.RootIndex)
	require.Len(t, rootKids, 1)
	b := tree.Node(rootKids[0])
	assert.Equal(t, "B", b.Item)
	assert.Equal(t, 6, b.Count)

	bKids := tree.Children(rootKids[0])
	require.Len(t, bKids, 2)
	assert.Equal(t, "E", tree.Node(bKids[0]).Item)
	assert.Equal(t, 5, tree.Node(bKids[0]).Count)
	assert.Equal(t, "D", tree.Node(bKids[1]).Item)
	assert.Equal(t, 1, tree.Node(bKids[1]).Count)
}

// TestNode_ReturnsCopy checks that editing a returned Node leaves the tree
// unchanged.
func TestNode_ReturnsCopy(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	idx := tree.Children(fptree.RootIndex)[0]
	n := tree.Node(idx)
	n.Count = 99
	n.Parent = fptree.NoNode
	n.Link = idx

	fresh := tree.Node(idx)
	assert.Equal(t, 6, fresh.Count)
	assert.Equal(t, fptree.RootIndex, fresh.Parent)
	assert.NotEqual(t, idx, fresh.Link)

	r := tree.Root()
	r.Count = 42
	assert.Equal(t, 0, tree.RootCount())
}

// TestBuild_SiblingsDistinct checks the sibling-uniqueness invariant.
func TestBuild_SiblingsDistinct(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 1)
	require.NoError(t, err)

	for i := 0; i < tree.Size(); i++ {
		seen := map[string]bool{}
		for _, c := range tree.Children(int32(i)) {
			item := tree.Node(c).Item
			assert.False(t, seen[item], "duplicate child %q under node %d", item, i)
			seen[item] = true
		}
	}
}

// TestBuild_NodeLinks verifies that each chain visits every node of the
// item exactly once, in insertion order, and that chain counts add up to
// the item frequency.
func TestBuild_NodeLinks(t *testing.T) {
	tree, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)

	assert.Equal(t, []int32{5, 6, 7, 9}, tree.NodeLinks("C"))
	assert.Equal(t, []int32{4, 8}, tree.NodeLinks("D"))
	assert.Nil(t, tree.NodeLinks("Z"))

	tree.Frequencies().Each(func(item string, count int) {
		total := 0
		for _, idx := range tree.NodeLinks(item) {
			n := tree.Node(idx)
			assert.Equal(t, item, n.Item)
			total += n.Count
		}
		assert.Equal(t, count, total, "chain of %s", item)

		byScan := 0
		for i := 1; i < tree.Size(); i++ {
			if tree.Node(int32(i)).Item == item {
				byScan++
			}
		}
		assert.Len(t, tree.NodeLinks(item), byScan, "chain of %s misses nodes", item)
	})

	_, ok := tree.Header().Head("Z")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B", "D", "E", "C"}, tree.Header().Items())
}

// TestBuild_Empty covers empty input and inputs without frequent items.
func TestBuild_Empty(t *testing.T) {
	tree, err := fptree.Build(nil, 2)
	require.NoError(t, err)
	assert.True(t, tree.Empty())
	assert.True(t, tree.SinglePath())
	assert.Equal(t, 0, tree.Header().Len())

	tree, err = fptree.Build([][]string{{"A"}, {"B"}}, 2)
	require.NoError(t, err)
	assert.True(t, tree.Empty())
}

// TestBuild_Options checks root options and the violation path.
func TestBuild_Options(t *testing.T) {
	_, err := fptree.Build(nil, 1, fptree.WithRoot("X", -1))
	assert.ErrorIs(t, err, fptree.ErrOptionViolation)

	tree, err := fptree.Build(
		[][]string{{"X", "A"}, {"X", "A", "B"}},
		1,
		fptree.WithRoot("X", 2),
		fptree.WithSuffix(itemset.New("X")),
	)
	require.NoError(t, err)
	assert.Equal(t, "X", tree.Root().Item)
	assert.Equal(t, 2, tree.RootCount())
	assert.False(t, tree.Frequencies().Has("X"), "suffix items are excluded")
	assert.True(t, tree.Suffix().Equal(itemset.New("X")))
}

// TestSinglePath distinguishes chains from branching trees.
func TestSinglePath(t *testing.T) {
	chain, err := fptree.Build([][]string{{"A", "B"}, {"A", "B", "C"}, {"A"}}, 1)
	require.NoError(t, err)
	assert.True(t, chain.SinglePath())

	branching, err := fptree.Build(exampleTransactions(), 3)
	require.NoError(t, err)
	assert.False(t, branching.SinglePath())

	// the subtree under A → D → C is a chain even though the tree is not
	d := branching.NodeLinks("D")[0]
	assert.True(t, branching.IsSinglePathFrom(d))
}

// TestBuildWeighted_MatchesRepeated shows that a weighted path behaves
// exactly like the same path repeated Count times.
func TestBuildWeighted_MatchesRepeated(t *testing.T) {
	weighted, err := fptree.BuildWeighted([]fptree.WeightedPath{
		{Items: []string{"A", "B"}, Count: 3},
		{Items: []string{"B"}, Count: 2},
		{Items: []string{"C"}, Count: 0},
	}, 1)
	require.NoError(t, err)

	repeated, err := fptree.Build([][]string{
		{"A", "B"}, {"A", "B"}, {"A", "B"}, {"B"}, {"B"},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, repeated.Size(), weighted.Size())
	assert.Equal(t, repeated.Frequencies().Items(), weighted.Frequencies().Items())
	for i := 0; i < repeated.Size(); i++ {
		assert.Equal(t, repeated.Node(int32(i)), weighted.Node(int32(i)))
	}
	assert.False(t, weighted.Frequencies().Has("C"), "zero-weight paths are ignored")
}
