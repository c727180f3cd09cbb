package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmine/dataset"
	"github.com/katalvlaran/lvmine/internal/config"
	"github.com/katalvlaran/lvmine/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// errNoInput is returned by commands that need transactions but got none.
var errNoInput = errors.New("lvmine: no input, use --input")

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"input":          "input.path",
	"format":         "input.format",
	"separator":      "input.separator",
	"min-support":    "mining.min_support",
	"min-confidence": "mining.min_confidence",
	"max-length":     "mining.max_length",
	"strict":         "mining.strict_rules",
	"output":         "output.format",
	"log-level":      "logger.level",
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	runID   string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "lvmine",
		Short:         "Frequent itemset and association rule mining with FP-Growth",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./lvmine.yaml if present)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		newMineCmd(a),
		newRulesCmd(a),
		newTreeCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup binds the running command's flags, loads the configuration and
// builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags(), flagKeys); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.runID = uuid.NewString()

	log, err := logger.New(cfg.Logger, cmd.ErrOrStderr(), logger.WithFields(zap.String("run_id", a.runID)))
	if err != nil {
		return err
	}
	a.log = log.Named(cmd.Name())

	return nil
}

// addInputFlags registers the flags that select and parse the input file.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "transaction file (csv, json, yaml); - for stdin")
	cmd.Flags().StringP("format", "f", "", "input format, inferred from the extension when empty")
	cmd.Flags().String("separator", ",", "csv item separator")
}

// loadInput reads the configured transaction source.
func (a *app) loadInput(cmd *cobra.Command) (dataset.Transactions, error) {
	in := a.cfg.Input
	if in.Path == "" {
		return nil, errNoInput
	}
	opts := []dataset.LoadOption{dataset.WithSeparator(in.SeparatorRune())}

	var (
		txs dataset.Transactions
		err error
	)
	switch {
	case in.Path == "-":
		format := dataset.FormatCSV
		if in.Format != "" {
			if format, err = dataset.ParseFormat(in.Format); err != nil {
				return nil, err
			}
		}
		txs, err = dataset.Load(cmd.InOrStdin(), format, opts...)
	case in.Format != "":
		format, perr := dataset.ParseFormat(in.Format)
		if perr != nil {
			return nil, perr
		}
		txs, err = dataset.LoadFileAs(in.Path, format, opts...)
	default:
		txs, err = dataset.LoadFile(in.Path, opts...)
	}
	if err != nil {
		return nil, err
	}

	a.log.Info("transactions loaded",
		zap.String("input", in.Path),
		zap.Int("transactions", txs.Len()),
		zap.Int("items", len(txs.Items())),
	)

	return txs, nil
}

// fail logs err and returns it for cobra to print.
func (a *app) fail(err error) error {
	a.log.Error("command failed", zap.Error(err))
	return err
}
