package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/itemset"
	"github.com/katalvlaran/lvmine/report"
	"github.com/katalvlaran/lvmine/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePatterns() *itemset.SupportMap {
	return itemset.FromEntries(
		itemset.Entry{Pattern: itemset.New("A"), Support: 4},
		itemset.Entry{Pattern: itemset.New("B"), Support: 6},
		itemset.Entry{Pattern: itemset.New("A", "B"), Support: 4},
	)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"": report.FormatTable, "Table": report.FormatTable,
		"json": report.FormatJSON, "YML": report.FormatYAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestSortedBySupport(t *testing.T) {
	got := report.SortedBySupport(samplePatterns())
	require.Len(t, got, 3)
	assert.Equal(t, "{B}", got[0].Pattern.String())
	assert.Equal(t, "{A}", got[1].Pattern.String(), "ties by size first")
	assert.Equal(t, "{A, B}", got[2].Pattern.String())
}

func TestPatterns_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Patterns(&buf, samplePatterns(), 3, report.FormatTable))
	out := buf.String()
	assert.Contains(t, out, "ITEMSET")
	assert.Contains(t, out, "{A, B}")
	assert.Less(t, strings.Index(out, "{B}"), strings.Index(out, "{A}"))
}

func TestPatterns_JSONAndYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Patterns(&buf, samplePatterns(), 3, report.FormatJSON))
	var doc report.PatternsDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3, doc.MinSupport)
	assert.Equal(t, 3, doc.Count)
	assert.Equal(t, itemset.New("B"), doc.Patterns[0].Pattern)

	buf.Reset()
	require.NoError(t, report.Patterns(&buf, samplePatterns(), 3, report.FormatYAML))
	var ydoc report.PatternsDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &ydoc))
	assert.Equal(t, doc, ydoc)

	buf.Reset()
	require.NoError(t, report.Patterns(&buf, itemset.NewSupportMap(), 3, report.FormatJSON))
	assert.Contains(t, buf.String(), `"patterns": []`)

	assert.ErrorIs(t, report.Patterns(&buf, samplePatterns(), 3, report.Format("xml")), report.ErrUnknownFormat)
}

func TestRules(t *testing.T) {
	rs, err := rules.Generate(samplePatterns(), 0.5, rules.WithTransactionCount(6))
	require.NoError(t, err)
	sorted := report.SortedByConfidence(rs)
	require.Len(t, sorted, 2)
	assert.Equal(t, 1.0, sorted[0].Confidence)

	var buf bytes.Buffer
	require.NoError(t, report.Rules(&buf, rs, 0.5, report.FormatTable))
	assert.Contains(t, buf.String(), "LIFT")
	assert.Contains(t, buf.String(), "1.000")

	buf.Reset()
	require.NoError(t, report.Rules(&buf, rs, 0.5, report.FormatJSON))
	var doc report.RulesDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, itemset.New("A"), doc.Rules[0].Antecedent)

	buf.Reset()
	plain, err := rules.Generate(samplePatterns(), 0.5)
	require.NoError(t, err)
	require.NoError(t, report.Rules(&buf, plain, 0.5, report.FormatTable))
	assert.NotContains(t, buf.String(), "LIFT")
}

func TestTreeListing(t *testing.T) {
	tree, err := fptree.Build([][]string{{"A", "B"}, {"A"}}, 1)
	require.NoError(t, err)
	res, err := fptree.Walk(tree)
	require.NoError(t, err)

	var buf bytes.Buffer
	report.TreeListing(&buf, res)
	assert.Contains(t, buf.String(), "  B")
	assert.Contains(t, buf.String(), "COUNT")
}
