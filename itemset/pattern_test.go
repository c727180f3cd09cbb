package itemset_test

import (
	"testing"

	"github.com/katalvlaran/lvmine/itemset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Canonical verifies sorting and de-duplication.
func TestNew_Canonical(t *testing.T) {
	p := itemset.New("E", "A", "B", "A")
	assert.Equal(t, itemset.Pattern{"A", "B", "E"}, p)
	assert.Equal(t, itemset.New("B", "E", "A").Key(), p.Key(), "order must not affect the key")

	empty := itemset.New()
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, "", empty.Key())
}

// TestFromKey_RoundTrip checks that FromKey inverts Key.
func TestFromKey_RoundTrip(t *testing.T) {
	p := itemset.New("milk", "bread", "beer")
	assert.True(t, p.Equal(itemset.FromKey(p.Key())))
	assert.Equal(t, 0, itemset.FromKey("").Len())
}

// TestKey_NoCollisions checks that labels containing separator-like
// characters keep their own keys.
func TestKey_NoCollisions(t *testing.T) {
	cases := []itemset.Pattern{
		itemset.New("A", "B"),
		itemset.New("A\x1fB"),
		itemset.New("A\x1fB", "C"),
		itemset.New("1:A"),
		itemset.New("1:A", "B"),
		itemset.New("A:1:B"),
		itemset.New(""),
		itemset.New("", "A"),
		itemset.New(),
	}
	seen := make(map[string]itemset.Pattern, len(cases))
	for _, p := range cases {
		k := p.Key()
		if prev, dup := seen[k]; dup {
			t.Errorf("patterns %q and %q share key %q", prev, p, k)
		}
		seen[k] = p
		assert.Equal(t, p, itemset.FromKey(k), "round trip of %q", p)
	}
}

// TestPattern_SetAlgebra covers Union, Difference, Contains and IsSubsetOf.
func TestPattern_SetAlgebra(t *testing.T) {
	ab := itemset.New("A", "B")
	bc := itemset.New("B", "C")

	assert.Equal(t, itemset.Pattern{"A", "B", "C"}, ab.Union(bc))
	assert.Equal(t, itemset.Pattern{"A"}, ab.Difference(bc))
	assert.Equal(t, itemset.Pattern{}, ab.Difference(ab))

	assert.True(t, ab.Contains("A"))
	assert.False(t, ab.Contains("C"))

	assert.True(t, itemset.New("B").IsSubsetOf(ab))
	assert.False(t, bc.IsSubsetOf(ab))
	assert.Equal(t, "{A, B}", ab.String())
}

// TestPattern_Compare orders by size first, then lexicographically.
func TestPattern_Compare(t *testing.T) {
	assert.Equal(t, -1, itemset.New("Z").Compare(itemset.New("A", "B")))
	assert.Equal(t, -1, itemset.New("A", "B").Compare(itemset.New("A", "C")))
	assert.Equal(t, 0, itemset.New("A", "C").Compare(itemset.New("C", "A")))
}

// TestCombinations_Order checks itertools-compatible ordering and counts.
func TestCombinations_Order(t *testing.T) {
	var got [][]string
	itemset.Combinations([]string{"A", "B", "C", "D"}, 2, func(c []string) bool {
		got = append(got, append([]string(nil), c...))
		return true
	})
	want := [][]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}}
	require.Equal(t, want, got)

	calls := 0
	itemset.Combinations([]string{"A"}, 2, func([]string) bool { calls++; return true })
	itemset.Combinations([]string{"A"}, 0, func([]string) bool { calls++; return true })
	assert.Zero(t, calls, "k out of range yields nothing")
}

// TestCombinations_EarlyStop verifies that returning false stops enumeration.
func TestCombinations_EarlyStop(t *testing.T) {
	calls := 0
	itemset.Combinations([]string{"A", "B", "C"}, 1, func([]string) bool {
		calls++
		return calls < 2
	})
	assert.Equal(t, 2, calls)
}

// TestProperSubsets lists the 2^k-2 proper subsets smallest first.
func TestProperSubsets(t *testing.T) {
	var keys []string
	itemset.ProperSubsets(itemset.New("A", "B", "C"), func(s itemset.Pattern) bool {
		keys = append(keys, s.String())
		return true
	})
	assert.Equal(t, []string{"{A}", "{B}", "{C}", "{A, B}", "{A, C}", "{B, C}"}, keys)
}
