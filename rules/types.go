package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmine/itemset"
	"go.uber.org/zap"
)

// Sentinel errors for rule generation.
var (
	// ErrConfidenceRange is returned when min_confidence is not in [0, 1].
	ErrConfidenceRange = errors.New("rules: min_confidence must be in [0, 1]")

	// ErrAntecedentMissing is returned in strict mode when an antecedent has
	// no support in the pattern map.
	ErrAntecedentMissing = errors.New("rules: antecedent missing from pattern map")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("rules: invalid option supplied")
)

// Rule is one association rule Antecedent → Consequent.
type Rule struct {
	Antecedent        itemset.Pattern `json:"antecedent" yaml:"antecedent"`
	Consequent        itemset.Pattern `json:"consequent" yaml:"consequent"`
	Support           int             `json:"support" yaml:"support"`
	AntecedentSupport int             `json:"antecedent_support" yaml:"antecedent_support"`
	Confidence        float64         `json:"confidence" yaml:"confidence"`
	// Lift is zero unless the transaction count was supplied.
	Lift float64 `json:"lift,omitempty" yaml:"lift,omitempty"`
}

// String renders the rule as "{A} → {B} (conf 1.00)".
func (r Rule) String() string {
	return fmt.Sprintf("%s → %s (conf %.2f)", r.Antecedent, r.Consequent, r.Confidence)
}

// RuleSet is the result of Generate.
type RuleSet struct {
	// Rules in generation order: patterns by size then items, antecedents
	// smallest first.
	Rules []Rule

	// ByAntecedent maps an antecedent key to all of its rules.
	ByAntecedent map[string][]Rule

	// Skipped counts candidate rules whose antecedent was not in the map.
	Skipped int

	// Transactions is the count given to WithTransactionCount, or 0.
	Transactions int
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}

	return len(rs.Rules)
}

// LastByAntecedent collapses ByAntecedent to one rule per antecedent, the
// one generated last. Earlier rules with the same antecedent are dropped.
func (rs *RuleSet) LastByAntecedent() map[string]Rule {
	out := make(map[string]Rule, len(rs.ByAntecedent))
	for k, list := range rs.ByAntecedent {
		out[k] = list[len(list)-1]
	}

	return out
}

// Option configures rule generation.
type Option func(*Options)

// Options holds rule generation parameters.
type Options struct {
	// Strict turns a missing antecedent into ErrAntecedentMissing.
	Strict bool

	// Transactions, if > 0, is the size of the mined dataset; used for Lift.
	Transactions int

	// Logger receives debug output about skipped rules.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns non-strict generation without lift and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithStrict fails generation on the first missing antecedent.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithTransactionCount supplies the dataset size so that Lift can be
// computed. n < 0 is an ErrOptionViolation.
func WithTransactionCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: transaction count cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Transactions = n
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
