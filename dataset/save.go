package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Save writes txs to w in the given format, readable back by Load.
// Only the separator of opts applies; comments are never written.
func Save(w io.Writer, txs Transactions, format Format, opts ...LoadOption) error {
	cfg := loadConfig{separator: ','}
	for _, opt := range opts {
		opt(&cfg)
	}
	if txs == nil {
		txs = Transactions{}
	}

	switch format {
	case FormatCSV:
		cw := csv.NewWriter(w)
		cw.Comma = cfg.separator
		if err := cw.WriteAll(txs); err != nil {
			return fmt.Errorf("dataset: write csv: %w", err)
		}
		return nil
	case FormatJSON:
		return json.NewEncoder(w).Encode(txs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(txs); err != nil {
			return fmt.Errorf("dataset: write yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
