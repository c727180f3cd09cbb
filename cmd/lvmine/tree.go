package main

import (
	"fmt"

	"github.com/katalvlaran/lvmine/fptree"
	"github.com/katalvlaran/lvmine/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		dot   bool
		depth int
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the FP-tree of a transaction file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			txs, err := a.loadInput(cmd)
			if err != nil {
				return a.fail(err)
			}
			tree, err := fptree.Build(txs, a.cfg.Mining.MinSupport)
			if err != nil {
				return a.fail(err)
			}
			a.log.Info("tree built",
				zap.Int("nodes", tree.Size()),
				zap.Int("frequent_items", tree.Header().Len()),
				zap.Bool("single_path", tree.SinglePath()),
			)

			if dot {
				out, err := fptree.DOT(tree)
				if err != nil {
					return a.fail(err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			}

			res, err := fptree.Walk(tree,
				fptree.WithWalkContext(cmd.Context()),
				fptree.WithMaxDepth(depth),
			)
			if err != nil {
				return a.fail(err)
			}
			report.TreeListing(cmd.OutOrStdout(), res)

			return nil
		},
	}
	addInputFlags(cmd)
	cmd.Flags().IntP("min-support", "s", 2, "minimum number of transactions per item")
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of a listing")
	cmd.Flags().IntVar(&depth, "depth", 0, "deepest level to list (0 = all)")

	return cmd
}
