package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/katalvlaran/lvmine/rules"
)

// RulesDoc is the JSON/YAML shape of a rule listing.
type RulesDoc struct {
	MinConfidence float64      `json:"min_confidence" yaml:"min_confidence"`
	Count         int          `json:"count" yaml:"count"`
	Skipped       int          `json:"skipped" yaml:"skipped"`
	Rules         []rules.Rule `json:"rules" yaml:"rules"`
}

// SortedByConfidence returns the rules of rs, highest confidence first;
// ties keep generation order.
func SortedByConfidence(rs *rules.RuleSet) []rules.Rule {
	out := make([]rules.Rule, 0, rs.Len())
	if rs != nil {
		out = append(out, rs.Rules...)
	}
	slices.SortStableFunc(out, func(a, b rules.Rule) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	return out
}

// Rules writes the association rules of rs to w.
func Rules(w io.Writer, rs *rules.RuleSet, minConfidence float64, format Format) error {
	list := SortedByConfidence(rs)
	if format != FormatTable {
		skipped := 0
		if rs != nil {
			skipped = rs.Skipped
		}
		return encode(w, format, RulesDoc{
			MinConfidence: minConfidence,
			Count:         len(list),
			Skipped:       skipped,
			Rules:         list,
		})
	}

	withLift := rs != nil && rs.Transactions > 0
	header := table.Row{"#", "Antecedent", "", "Consequent", "Support", "Confidence"}
	if withLift {
		header = append(header, "Lift")
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Support", Align: text.AlignRight},
		{Name: "Confidence", Align: text.AlignRight},
		{Name: "Lift", Align: text.AlignRight},
	})
	t.AppendHeader(header)
	for i, r := range list {
		row := table.Row{i + 1, r.Antecedent.String(), "→", r.Consequent.String(),
			r.Support, fmt.Sprintf("%.3f", r.Confidence)}
		if withLift {
			row = append(row, fmt.Sprintf("%.3f", r.Lift))
		}
		t.AppendRow(row)
	}
	t.AppendFooter(table.Row{"", "rules", len(list)})
	t.Render()

	return nil
}
