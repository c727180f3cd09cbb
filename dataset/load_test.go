package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmine/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_CSV reads ragged rows, skips comments and normalizes items.
func TestLoad_CSV(t *testing.T) {
	in := "# basket export\nmilk, bread ,beer\nmilk,bread,,milk\n\nbeer\n"
	txs, err := dataset.Load(strings.NewReader(in), dataset.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, dataset.Transactions{
		{"milk", "bread", "beer"},
		{"milk", "bread"},
		{"beer"},
	}, txs)
}

// TestLoad_CSVSeparator honours a custom separator.
func TestLoad_CSVSeparator(t *testing.T) {
	txs, err := dataset.Load(strings.NewReader("a;b\nc\n"), dataset.FormatCSV, dataset.WithSeparator(';'))
	require.NoError(t, err)
	assert.Equal(t, dataset.Transactions{{"a", "b"}, {"c"}}, txs)
}

// TestLoad_JSONAndYAML decode nested sequences.
func TestLoad_JSONAndYAML(t *testing.T) {
	txs, err := dataset.Load(strings.NewReader(`[["A","B"],["B","B","C"]]`), dataset.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, dataset.Transactions{{"A", "B"}, {"B", "C"}}, txs)

	txs, err = dataset.Load(strings.NewReader("- [A, B]\n- [C]\n"), dataset.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, dataset.Transactions{{"A", "B"}, {"C"}}, txs)

	txs, err = dataset.Load(strings.NewReader(""), dataset.FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

// TestLoad_Errors maps failures onto the sentinel errors.
func TestLoad_Errors(t *testing.T) {
	_, err := dataset.Load(strings.NewReader("{"), dataset.FormatJSON)
	assert.ErrorIs(t, err, dataset.ErrParse)

	_, err = dataset.Load(strings.NewReader(""), dataset.Format("xml"))
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)

	_, err = dataset.ParseFormat(".parquet")
	assert.ErrorIs(t, err, dataset.ErrUnknownFormat)

	_, err = dataset.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

// TestLoadFile_InfersFormat picks the loader from the extension.
func TestLoadFile_InfersFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baskets.yml")
	require.NoError(t, os.WriteFile(path, []byte("- [x, y]\n"), 0o600))

	txs, err := dataset.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dataset.Transactions{{"x", "y"}}, txs)

	for in, want := range map[string]dataset.Format{
		"csv": dataset.FormatCSV, ".TXT": dataset.FormatCSV,
		"json": dataset.FormatJSON, ".yaml": dataset.FormatYAML,
	} {
		got, err := dataset.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

// TestTransactions_Helpers covers Items, Clone and Len.
func TestTransactions_Helpers(t *testing.T) {
	txs := dataset.Transactions{{"B", "A"}, {"C", "A"}}
	assert.Equal(t, []string{"B", "A", "C"}, txs.Items())
	assert.Equal(t, 2, txs.Len())

	c := txs.Clone()
	c[0][0] = "Z"
	assert.Equal(t, "B", txs[0][0], "Clone must deep-copy")
}

// TestSave_RoundTrip writes every format and loads it back.
func TestSave_RoundTrip(t *testing.T) {
	txs := dataset.Transactions{{"milk", "bread"}, {"beer"}, {"a b", "c"}}
	for _, f := range []dataset.Format{dataset.FormatCSV, dataset.FormatJSON, dataset.FormatYAML} {
		var buf strings.Builder
		require.NoError(t, dataset.Save(&buf, txs, f, dataset.WithSeparator(';')), f)
		got, err := dataset.Load(strings.NewReader(buf.String()), f, dataset.WithSeparator(';'))
		require.NoError(t, err, f)
		assert.Equal(t, txs, got, f)
	}

	var buf strings.Builder
	assert.ErrorIs(t, dataset.Save(&buf, txs, dataset.Format("xml")), dataset.ErrUnknownFormat)
}
