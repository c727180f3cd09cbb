package main

import (
	"github.com/katalvlaran/lvmine/report"
	"github.com/katalvlaran/lvmine/rules"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRulesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Derive association rules from the frequent itemsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txs, err := a.loadInput(cmd)
			if err != nil {
				return a.fail(err)
			}
			patterns, err := a.mine(cmd, txs)
			if err != nil {
				return a.fail(err)
			}

			opts := []rules.Option{
				rules.WithLogger(a.log),
				rules.WithTransactionCount(txs.Len()),
			}
			if a.cfg.Mining.StrictRules {
				opts = append(opts, rules.WithStrict())
			}
			rs, err := rules.Generate(patterns, a.cfg.Mining.MinConfidence, opts...)
			if err != nil {
				return a.fail(err)
			}
			a.log.Info("rules done",
				zap.Float64("min_confidence", a.cfg.Mining.MinConfidence),
				zap.Int("rules", rs.Len()),
				zap.Int("skipped", rs.Skipped),
			)

			format, err := report.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return a.fail(err)
			}

			return report.Rules(cmd.OutOrStdout(), rs, a.cfg.Mining.MinConfidence, format)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().IntP("min-support", "s", 2, "minimum number of transactions per itemset")
	cmd.Flags().Float64P("min-confidence", "c", 0.6, "minimum rule confidence in [0, 1]")
	cmd.Flags().Int("max-length", 0, "longest itemset to derive rules from (0 = no limit)")
	cmd.Flags().Bool("strict", false, "fail when an antecedent is missing from the itemsets")
	cmd.Flags().StringP("output", "o", "table", "output format: table, json, yaml")

	return cmd
}
