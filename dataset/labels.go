// labels.go: item naming schemes for generated datasets.

package dataset

import (
	"fmt"
	"strconv"
)

// LabelFn names an item from its zero-based index in the item pool.
// It must be pure: the same idx always yields the same label.
// Panics in implementations indicate programmer error in configuration.
type LabelFn func(idx int) string

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns the uppercase Latin letter for idx in [0..25].
// Panics if idx < 0 or idx > 25.
func SymbolLabel(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolLabel: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelLabel returns the spreadsheet column name for idx: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
// Complexity: O(log₂₆ idx).
func ExcelLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabel returns a LabelFn producing prefix + decimal index, e.g.
// "sku0", "sku1", ...
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixLabel: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}
