package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for an output format other than table, json
// or yaml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects a renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts "table", "json", "yaml" or "yml", case-insensitively.
// The empty string means FormatTable.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
