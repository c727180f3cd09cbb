package report

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/lvmine/fptree"
)

// TreeListing writes a breadth-first node listing, one row per visit,
// with the item indented by depth.
func TreeListing(w io.Writer, res *fptree.WalkResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Count", Align: text.AlignRight},
		{Name: "Depth", Align: text.AlignRight},
	})
	t.AppendHeader(table.Row{"Node", "Parent", "Depth", "Item", "Count"})
	for _, v := range res.Visits {
		t.AppendRow(table.Row{v.Index, v.Parent, v.Depth, strings.Repeat("  ", v.Depth-1) + v.Item, v.Count})
	}
	t.Render()
}
