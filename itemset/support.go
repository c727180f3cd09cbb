// SPDX-License-Identifier: MIT
// Package: lvmine/itemset
//
// support.go: PatternSupportMap and the pattern aggregator.
//
// Contract:
//   • Set overwrites, Add sums; both canonicalise nothing, the Pattern must
//     already come from New/Union/Difference.
//   • Merge never mutates its arguments; MergeFrom mutates only the receiver.
//   • Summation on identical keys makes Merge associative and commutative.
//   • All read methods are nil-safe and treat a nil map as empty.

package itemset

import (
	"slices"
)

// Entry is one frequent pattern together with its support.
type Entry struct {
	Pattern Pattern `json:"items" yaml:"items"`
	Support int     `json:"support" yaml:"support"`
}

// SupportMap maps canonical patterns to their support counts.
type SupportMap struct {
	entries map[string]Entry
}

// NewSupportMap returns an empty SupportMap.
func NewSupportMap() *SupportMap {
	return &SupportMap{entries: make(map[string]Entry)}
}

// FromEntries builds a SupportMap from entries; repeated patterns are summed.
func FromEntries(entries ...Entry) *SupportMap {
	m := NewSupportMap()
	for _, e := range entries {
		m.Add(e.Pattern, e.Support)
	}

	return m
}

// Set stores support for p, replacing any previous value.
func (m *SupportMap) Set(p Pattern, support int) {
	m.entries[p.Key()] = Entry{Pattern: p, Support: support}
}

// Add sums support into the value stored for p.
func (m *SupportMap) Add(p Pattern, support int) {
	key := p.Key()
	if e, ok := m.entries[key]; ok {
		e.Support += support
		m.entries[key] = e
		return
	}
	m.entries[key] = Entry{Pattern: p, Support: support}
}

// Support returns the support stored for p and whether p is present.
func (m *SupportMap) Support(p Pattern) (int, bool) {
	return m.SupportByKey(p.Key())
}

// SupportByKey is Support addressed by a canonical key.
func (m *SupportMap) SupportByKey(key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	e, ok := m.entries[key]

	return e.Support, ok
}

// Len returns the number of stored patterns.
func (m *SupportMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Each calls fn for every entry in unspecified order.
func (m *SupportMap) Each(fn func(Entry)) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		fn(e)
	}
}

// Entries returns a snapshot sorted by pattern size, then by items.
// Complexity: O(n log n).
func (m *SupportMap) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return a.Pattern.Compare(b.Pattern)
	})

	return out
}

// ToMap flattens the map into key → support, handy for comparisons.
func (m *SupportMap) ToMap() map[string]int {
	out := make(map[string]int, m.Len())
	m.Each(func(e Entry) {
		out[e.Pattern.Key()] = e.Support
	})

	return out
}

// Equal reports whether m and o hold the same patterns with the same supports.
func (m *SupportMap) Equal(o *SupportMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	equal := true
	m.Each(func(e Entry) {
		if s, ok := o.SupportByKey(e.Pattern.Key()); !ok || s != e.Support {
			equal = false
		}
	})

	return equal
}

// MergeFrom folds o into m: union of keys, summed supports on collision.
func (m *SupportMap) MergeFrom(o *SupportMap) {
	o.Each(func(e Entry) {
		m.Add(e.Pattern, e.Support)
	})
}

// Merge returns a new map holding the aggregate of a and b.
// Complexity: O(|a| + |b|).
func Merge(a, b *SupportMap) *SupportMap {
	out := &SupportMap{entries: make(map[string]Entry, a.Len()+b.Len())}
	out.MergeFrom(a)
	out.MergeFrom(b)

	return out
}
