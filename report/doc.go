// Package report renders mining results for people and for other tools:
// aligned text tables (go-pretty), JSON and YAML documents.
//
// Patterns are listed by support, highest first, ties by size and items.
// Rules are listed by confidence, highest first, ties in generation order.
package report
