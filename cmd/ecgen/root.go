package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ecgen/count"
	"github.com/katalvlaran/ecgen/internal/config"
	"github.com/katalvlaran/ecgen/internal/logging"
)

// ErrInvalidSize indicates a size argument that is not a usable integer.
var ErrInvalidSize = errors.New("ecgen: invalid size")

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	format     string
	limit      int
	states     bool
	logLevel   string

	cfg    *config.Config
	log    *logging.Logger
	counts *count.Cache
}

func newRootCmd() *cobra.Command {
	a := &app{
		log:    logging.NewNop(),
		counts: count.NewCache(),
	}

	root := &cobra.Command{
		Use:   "ecgen",
		Short: "Enumerate combinatorial objects in minimal-change order",
		Long: `ecgen prints Gray-code style sequences: binary strings, permutations,
k-subsets and set partitions, each step differing from the previous one
by a single flip, swap or move. By default only the edits are printed;
--states prints the objects themselves.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.log.Sync() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.format, "format", "f", config.FormatText, "output format: text, json or yaml")
	pf.IntVarP(&a.limit, "limit", "n", 0, "print at most this many items (0 = all)")
	pf.BoolVarP(&a.states, "states", "s", false, "print objects instead of edits")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		a.grayCmd(),
		a.ehrCmd(),
		a.sjtCmd(),
		a.bipartCmd(),
		a.partitionCmd(),
		a.combinCmd(),
		a.countCmd(),
	)
	a.logFailures(root)
	return root
}

// logFailures wraps every RunE below cmd so that a failing command is
// logged at error level before cobra hands the error back to main.
func (a *app) logFailures(cmd *cobra.Command) {
	for _, sub := range cmd.Commands() {
		a.logFailures(sub)
	}
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			a.log.Error("command failed", zap.Strings("args", args), zap.Error(err))
		}
		return err
	}
}

// setup loads the configuration, lets explicitly set flags override it and
// builds the stderr logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("limit") {
		cfg.Output.Limit = a.limit
	}
	if flags.Changed("states") {
		cfg.Output.States = a.states
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log.With(zap.String("command", cmd.Name()))
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("format", cfg.Output.Format),
		zap.Int("limit", cfg.Output.Limit),
		zap.Bool("states", cfg.Output.States),
	)
	return nil
}

// sizes parses every argument as a non-negative integer.
func sizes(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, errors.Wrapf(ErrInvalidSize, "%q", s)
		}
		out[i] = v
	}
	return out, nil
}
