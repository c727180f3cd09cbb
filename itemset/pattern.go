// SPDX-License-Identifier: MIT
// Package: lvmine/itemset
//
// pattern.go: canonical itemset representation.
//
// Contract:
//   • A Pattern is always sorted ascending and free of duplicates.
//   • Every constructor and set operation returns a fresh slice; callers may
//     keep or mutate their inputs afterwards.
//   • The empty Pattern is valid and has Key() == "".
//   • Key() is injective: distinct patterns never share a key, whatever
//     characters their items contain.

package itemset

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

// keyLenSep ends the length prefix of each item inside Key().
const keyLenSep = ':'

// Pattern is a canonical, order-independent set of items.
type Pattern []string

// New builds a Pattern from items in any order, dropping duplicates.
// Complexity: O(k log k) time, O(k) space.
func New(items ...string) Pattern {
	if len(items) == 0 {
		return Pattern{}
	}
	seen := mapset.NewThreadUnsafeSet()
	out := make(Pattern, 0, len(items))
	for _, it := range items {
		if seen.Add(it) {
			out = append(out, it)
		}
	}
	sort.Strings(out)

	return out
}

// FromKey rebuilds the Pattern encoded by Key. A key not produced by Key
// yields the items decoded before the first malformed part.
func FromKey(key string) Pattern {
	out := Pattern{}
	for len(key) > 0 {
		i := strings.IndexByte(key, keyLenSep)
		if i < 0 {
			break
		}
		n, err := strconv.Atoi(key[:i])
		if err != nil || n < 0 || i+1+n > len(key) {
			break
		}
		out = append(out, key[i+1:i+1+n])
		key = key[i+1+n:]
	}

	return out
}

// Key returns the canonical map key of p. Each item is written as
// "<byte length>:<item>", so labels may contain any character without two
// different patterns sharing a key.
func (p Pattern) Key() string {
	var b strings.Builder
	for _, it := range p {
		b.WriteString(strconv.Itoa(len(it)))
		b.WriteByte(keyLenSep)
		b.WriteString(it)
	}

	return b.String()
}

// Len returns the number of items in p.
func (p Pattern) Len() int { return len(p) }

// Contains reports whether item is a member of p.
// Complexity: O(log k).
func (p Pattern) Contains(item string) bool {
	i := sort.SearchStrings(p, item)

	return i < len(p) && p[i] == item
}

// Equal reports whether p and q hold the same items.
func (p Pattern) Equal(q Pattern) bool {
	return slices.Equal(p, q)
}

// Compare orders patterns by size first, then item by item.
func (p Pattern) Compare(q Pattern) int {
	if len(p) != len(q) {
		if len(p) < len(q) {
			return -1
		}
		return 1
	}

	return slices.Compare(p, q)
}

// Union returns the items present in p or q.
// Complexity: O(|p| + |q|) merge of two sorted slices.
func (p Pattern) Union(q Pattern) Pattern {
	out := make(Pattern, 0, len(p)+len(q))
	i, j := 0, 0
	for i < len(p) && j < len(q) {
		switch {
		case p[i] == q[j]:
			out = append(out, p[i])
			i++
			j++
		case p[i] < q[j]:
			out = append(out, p[i])
			i++
		default:
			out = append(out, q[j])
			j++
		}
	}
	out = append(out, p[i:]...)
	out = append(out, q[j:]...)

	return out
}

// Difference returns the items of p that are not in q.
func (p Pattern) Difference(q Pattern) Pattern {
	left := toSet(p)
	right := toSet(q)
	diff := left.Difference(right)

	out := make(Pattern, 0, diff.Cardinality())
	diff.Each(func(v interface{}) bool {
		out = append(out, v.(string))
		return false
	})
	sort.Strings(out)

	return out
}

// IsSubsetOf reports whether every item of p also belongs to q.
func (p Pattern) IsSubsetOf(q Pattern) bool {
	if len(p) > len(q) {
		return false
	}
	for _, it := range p {
		if !q.Contains(it) {
			return false
		}
	}

	return true
}

// String renders p as "{A, B, C}".
func (p Pattern) String() string {
	return "{" + strings.Join(p, ", ") + "}"
}

// toSet copies p into a thread-unsafe mapset; patterns are never shared
// across goroutines.
func toSet(p Pattern) mapset.Set {
	s := mapset.NewThreadUnsafeSet()
	for _, it := range p {
		s.Add(it)
	}

	return s
}
