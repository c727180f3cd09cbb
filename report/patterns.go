package report

import (
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/lvmine/itemset"
)

// PatternsDoc is the JSON/YAML shape of a pattern listing.
type PatternsDoc struct {
	MinSupport int             `json:"min_support" yaml:"min_support"`
	Count      int             `json:"count" yaml:"count"`
	Patterns   []itemset.Entry `json:"patterns" yaml:"patterns"`
}

// SortedBySupport returns the entries of sm, highest support first; ties
// keep the Entries order (size, then items).
func SortedBySupport(sm *itemset.SupportMap) []itemset.Entry {
	entries := sm.Entries()
	slices.SortStableFunc(entries, func(a, b itemset.Entry) int {
		return b.Support - a.Support
	})

	return entries
}

// Patterns writes the frequent patterns of sm to w.
func Patterns(w io.Writer, sm *itemset.SupportMap, minSupport int, format Format) error {
	entries := SortedBySupport(sm)
	if format != FormatTable {
		if entries == nil {
			entries = []itemset.Entry{}
		}
		return encode(w, format, PatternsDoc{MinSupport: minSupport, Count: len(entries), Patterns: entries})
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Size", Align: text.AlignRight},
		{Name: "Support", Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"#", "Itemset", "Size", "Support"})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Pattern.String(), e.Pattern.Len(), e.Support})
	}
	t.AppendFooter(table.Row{"", "patterns", len(entries), ""})
	t.Render()

	return nil
}
