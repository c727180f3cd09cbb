package rules

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmine/itemset"
	"go.uber.org/zap"
)

// Generate derives every rule X → I∖X with confidence ≥ minConfidence from
// the patterns I of size ≥ 2 and their non-empty proper subsets X.
//
// Errors:
//   - ErrConfidenceRange if minConfidence is NaN or outside [0, 1].
//   - ErrAntecedentMissing (strict mode only) for an antecedent without a
//     positive support in patterns.
//   - ErrOptionViolation for invalid options.
//
// Determinism: patterns are visited in Entries order and antecedents
// smallest first, so identical maps give identical rule sets.
func Generate(patterns *itemset.SupportMap, minConfidence float64, opts ...Option) (*RuleSet, error) {
	if math.IsNaN(minConfidence) || minConfidence < 0 || minConfidence > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrConfidenceRange, minConfidence)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rs := &RuleSet{
		ByAntecedent: make(map[string][]Rule),
		Transactions: o.Transactions,
	}
	var genErr error
	for _, e := range patterns.Entries() {
		if e.Pattern.Len() < 2 {
			continue
		}
		whole := e
		itemset.ProperSubsets(e.Pattern, func(ante itemset.Pattern) bool {
			anteSup, ok := patterns.Support(ante)
			if !ok || anteSup <= 0 {
				if o.Strict {
					genErr = fmt.Errorf("%w: %s in %s", ErrAntecedentMissing, ante, whole.Pattern)
					return false
				}
				rs.Skipped++
				o.Logger.Debug("rules: antecedent missing, rule skipped",
					zap.Stringer("antecedent", ante),
					zap.Stringer("itemset", whole.Pattern),
				)
				return true
			}

			conf := float64(whole.Support) / float64(anteSup)
			if conf < minConfidence {
				return true
			}
			r := Rule{
				Antecedent:        ante,
				Consequent:        whole.Pattern.Difference(ante),
				Support:           whole.Support,
				AntecedentSupport: anteSup,
				Confidence:        conf,
			}
			if o.Transactions > 0 {
				if consSup, ok := patterns.Support(r.Consequent); ok {
					r.Lift = Lift(conf, consSup, o.Transactions)
				}
			}
			rs.Rules = append(rs.Rules, r)
			k := ante.Key()
			rs.ByAntecedent[k] = append(rs.ByAntecedent[k], r)
			return true
		})
		if genErr != nil {
			return nil, genErr
		}
	}
	o.Logger.Debug("rules: generation finished",
		zap.Int("rules", len(rs.Rules)),
		zap.Int("skipped", rs.Skipped),
		zap.Float64("min_confidence", minConfidence),
	)

	return rs, nil
}

// GenerateAssociationRules returns, for every antecedent key, all rules
// with that antecedent and confidence ≥ minConfidence. Antecedents missing
// from patterns are skipped.
func GenerateAssociationRules(patterns *itemset.SupportMap, minConfidence float64) (map[string][]Rule, error) {
	rs, err := Generate(patterns, minConfidence)
	if err != nil {
		return nil, err
	}

	return rs.ByAntecedent, nil
}

// Lift is confidence / P(consequent), where P(consequent) is
// consequentSupport / transactions. Returns 0 when either count is not
// positive.
func Lift(confidence float64, consequentSupport, transactions int) float64 {
	if consequentSupport <= 0 || transactions <= 0 {
		return 0
	}

	return confidence * float64(transactions) / float64(consequentSupport)
}
