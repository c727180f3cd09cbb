// Package rules derives association rules from a PatternSupportMap.
//
// 🚀 What is an association rule?
//
//	For a frequent itemset I and a non-empty proper subset X of I, the rule
//	X → I∖X says "baskets containing X tend to contain I∖X too". Its
//	confidence is support(I) / support(X); rules below min_confidence are
//	discarded.
//
// ✨ Key features:
//   - Generate                 - full RuleSet: ordered rules, per-antecedent index, skip count
//   - GenerateAssociationRules - antecedent key → every rule with that antecedent
//   - WithStrict               - fail on an antecedent missing from the map
//   - WithTransactionCount     - enables Lift
//   - RuleSet.LastByAntecedent - one rule per antecedent (last one wins)
//
// ⚠️ Missing antecedents:
//
//	A map produced by the miner always contains every subset of every
//	pattern. Hand-made or truncated maps may not. Such rules are skipped
//	and counted in RuleSet.Skipped, or rejected with ErrAntecedentMissing
//	under WithStrict. A confidence is never computed from another rule's
//	numbers.
//
// ⚙️ Usage:
//
//	patterns, _ := fpgrowth.MineFrequentPatterns(transactions, 3)
//	rs, err := rules.Generate(patterns, 0.6, rules.WithTransactionCount(len(transactions)))
//	if err != nil { /* ErrConfidenceRange, ErrAntecedentMissing, ErrOptionViolation */ }
//	for _, r := range rs.Rules {
//	    fmt.Println(r)
//	}
//
// Complexity:
//
//	O(Σ 2^|I|) over the patterns of the map.
package rules
