package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmine/dataset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errBadFlag is returned for generator flags the dataset options reject.
var errBadFlag = errors.New("lvmine: invalid flag value")

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n, items, lo, hi int
		seed             int64
		skew             float64
		labels, output   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded synthetic basket dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			label, err := parseLabels(labels, items)
			if err != nil {
				return a.fail(err)
			}
			if items < 1 || lo < 0 || hi < lo || skew < 0 {
				return a.fail(fmt.Errorf("%w: items=%d basket=[%d,%d] skew=%v", errBadFlag, items, lo, hi, skew))
			}
			format, err := dataset.ParseFormat(output)
			if err != nil {
				return a.fail(err)
			}

			txs, err := dataset.Generate(n,
				dataset.WithSeed(seed),
				dataset.WithItems(items),
				dataset.WithBasketSize(lo, hi),
				dataset.WithSkew(skew),
				dataset.WithLabels(label),
			)
			if err != nil {
				return a.fail(err)
			}
			a.log.Info("dataset generated",
				zap.Int("transactions", txs.Len()),
				zap.Int64("seed", seed),
			)

			return dataset.Save(cmd.OutOrStdout(), txs, format)
		},
	}
	cmd.Flags().IntVarP(&n, "transactions", "n", 100, "number of baskets")
	cmd.Flags().IntVar(&items, "items", 10, "size of the item pool")
	cmd.Flags().IntVar(&lo, "min-basket", 1, "smallest basket")
	cmd.Flags().IntVar(&hi, "max-basket", 5, "largest basket")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&skew, "skew", 1.0, "popularity skew (0 = uniform)")
	cmd.Flags().StringVar(&labels, "labels", "excel", "item names: excel, symbol, decimal or prefix:<p>")
	cmd.Flags().StringVarP(&output, "output", "o", "csv", "output format: csv, json, yaml")

	return cmd
}

// parseLabels maps a --labels value to a LabelFn valid for items names.
func parseLabels(s string, items int) (dataset.LabelFn, error) {
	switch {
	case s == "excel":
		return dataset.ExcelLabel, nil
	case s == "decimal":
		return dataset.DecimalLabel, nil
	case s == "symbol":
		if items > 26 {
			return nil, fmt.Errorf("%w: symbol labels allow at most 26 items, got %d", errBadFlag, items)
		}
		return dataset.SymbolLabel, nil
	case strings.HasPrefix(s, "prefix:"):
		return dataset.PrefixLabel(strings.TrimPrefix(s, "prefix:")), nil
	default:
		return nil, fmt.Errorf("%w: labels %q", errBadFlag, s)
	}
}
