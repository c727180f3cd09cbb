package dataset

import (
	"strings"
)

// Transactions is an ordered collection of baskets.
type Transactions [][]string

// Len returns the number of transactions.
func (t Transactions) Len() int { return len(t) }

// Items returns every distinct item in first-appearance order.
func (t Transactions) Items() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tx := range t {
		for _, it := range tx {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			out = append(out, it)
		}
	}

	return out
}

// Clone returns a deep copy.
func (t Transactions) Clone() Transactions {
	out := make(Transactions, len(t))
	for i, tx := range t {
		out[i] = append([]string(nil), tx...)
	}

	return out
}

// Normalize trims whitespace, drops empty labels and repeated items inside
// each transaction, and returns the result as a new collection. Empty
// transactions are kept; they count towards the total but support nothing.
func (t Transactions) Normalize() Transactions {
	out := make(Transactions, len(t))
	for i, tx := range t {
		out[i] = normalizeOne(tx)
	}

	return out
}

func normalizeOne(tx []string) []string {
	seen := make(map[string]struct{}, len(tx))
	out := make([]string, 0, len(tx))
	for _, raw := range tx {
		it := strings.TrimSpace(raw)
		if it == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}

	return out
}
