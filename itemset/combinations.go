// SPDX-License-Identifier: MIT
// Package: lvmine/itemset
//
// combinations.go: k-combinations and proper subsets.
//
// Determinism:
//   • Combinations are produced in lexicographic order of their index
//     tuples (0,1,…,k-1) → … → (n-k,…,n-1), i.e. itertools order.
//   • The slice handed to the callback is reused between calls; copy it if
//     it must outlive the callback.

package itemset

// Combinations calls fn once for every k-element combination of items,
// preserving the relative order of items. Returning false from fn stops
// the enumeration early.
// k ≤ 0 or k > len(items) yields no calls.
// Complexity: O(C(n,k)·k) time, O(k) extra space.
func Combinations(items []string, k int, fn func(combo []string) bool) {
	n := len(items)
	if k <= 0 || k > n {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]string, k)

	for {
		for i, j := range idx {
			buf[i] = items[j]
		}
		if !fn(buf) {
			return
		}

		// find the rightmost index that can still move right
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// ProperSubsets calls fn with every non-empty proper subset of p, smallest
// first. Each subset handed to fn is a fresh Pattern.
// Complexity: O(2^k·k).
func ProperSubsets(p Pattern, fn func(sub Pattern) bool) {
	for size := 1; size < len(p); size++ {
		stop := false
		Combinations(p, size, func(combo []string) bool {
			// p is sorted, so every combination already is too
			sub := make(Pattern, len(combo))
			copy(sub, combo)
			if !fn(sub) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}
