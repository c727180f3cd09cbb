package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmine/dataset"
	"github.com/katalvlaran/lvmine/fpgrowth"
	"github.com/katalvlaran/lvmine/itemset"
	"github.com/katalvlaran/lvmine/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errVerify is returned by --verify when a reported support is wrong.
var errVerify = errors.New("lvmine: verification failed")

func newMineCmd(a *app) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List the frequent itemsets of a transaction file",
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
			if verify {
				if err := verifySupports(txs, patterns, a.cfg.Mining.MinSupport); err != nil {
					return a.fail(err)
				}
				a.log.Info("supports verified", zap.Int("patterns", patterns.Len()))
			}
			format, err := report.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return a.fail(err)
			}

			return report.Patterns(cmd.OutOrStdout(), patterns, a.cfg.Mining.MinSupport, format)
		},
	}
	addInputFlags(cmd)
	cmd.Flags().IntP("min-support", "s", 2, "minimum number of transactions per itemset")
	cmd.Flags().Int("max-length", 0, "longest itemset to report (0 = no limit)")
	cmd.Flags().StringP("output", "o", "table", "output format: table, json, yaml")
	cmd.Flags().BoolVar(&verify, "verify", false, "recount every support with a tid-set index")

	return cmd
}

// mine runs FP-Growth with the configured thresholds.
func (a *app) mine(cmd *cobra.Command, txs dataset.Transactions) (*itemset.SupportMap, error) {
	var stats fpgrowth.Stats
	patterns, err := fpgrowth.MineFrequentPatterns(txs, a.cfg.Mining.MinSupport,
		fpgrowth.WithContext(cmd.Context()),
		fpgrowth.WithLogger(a.log),
		fpgrowth.WithMaxLength(a.cfg.Mining.MaxLength),
		fpgrowth.WithStats(&stats),
	)
	if err != nil {
		return nil, err
	}
	a.log.Info("mining done",
		zap.Int("min_support", a.cfg.Mining.MinSupport),
		zap.Int("patterns", stats.Patterns),
		zap.Int("conditional_trees", stats.TreesBuilt),
		zap.Int("max_depth", stats.MaxDepth),
	)

	return patterns, nil
}

// verifySupports recounts every pattern against the raw transactions.
func verifySupports(txs dataset.Transactions, patterns *itemset.SupportMap, minSupport int) error {
	ix := dataset.NewIndex(txs)
	for _, e := range patterns.Entries() {
		if got := ix.Support(e.Pattern...); got != e.Support || got < minSupport {
			return fmt.Errorf("%w: %s reported %d, counted %d", errVerify, e.Pattern, e.Support, got)
		}
	}

	return nil
}
