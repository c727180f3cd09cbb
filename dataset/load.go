package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an on-disk transaction encoding.
type Format string

const (
	// FormatCSV holds one transaction per line, items separated by Separator.
	FormatCSV Format = "csv"
	// FormatJSON holds an array of string arrays.
	FormatJSON Format = "json"
	// FormatYAML holds a sequence of string sequences.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name or file extension ("csv", ".yml", …) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv", "txt", "basket":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	separator rune
	comment   rune
}

// WithSeparator sets the CSV item separator (default ',').
func WithSeparator(r rune) LoadOption {
	return func(c *loadConfig) {
		if r != 0 {
			c.separator = r
		}
	}
}

// WithComment makes CSV lines starting with r be ignored (default '#').
func WithComment(r rune) LoadOption {
	return func(c *loadConfig) {
		c.comment = r
	}
}

// Load reads transactions from r in the given format and normalizes them.
func Load(r io.Reader, format Format, opts ...LoadOption) (Transactions, error) {
	cfg := loadConfig{separator: ',', comment: '#'}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		txs Transactions
		err error
	)
	switch format {
	case FormatCSV:
		txs, err = loadCSV(r, cfg)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&txs)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&txs)
		if errors.Is(err, io.EOF) {
			// an empty YAML document is an empty dataset
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, format, err)
	}

	return txs.Normalize(), nil
}

// LoadFile opens path and loads it with the format implied by its extension.
func LoadFile(path string, opts ...LoadOption) (Transactions, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	return LoadFileAs(path, format, opts...)
}

// LoadFileAs opens path and loads it with an explicit format.
func LoadFileAs(path string, format Format, opts ...LoadOption) (Transactions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, format, opts...)
}

func loadCSV(r io.Reader, cfg loadConfig) (Transactions, error) {
	cr := csv.NewReader(r)
	cr.Comma = cfg.separator
	cr.Comment = cfg.comment
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var txs Transactions
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return txs, nil
		}
		if err != nil {
			return nil, err
		}
		txs = append(txs, rec)
	}
}
