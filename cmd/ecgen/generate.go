package main

import (
	"iter"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/ecgen/bipart"
	"github.com/katalvlaran/ecgen/combin"
	"github.com/katalvlaran/ecgen/count"
	"github.com/katalvlaran/ecgen/ehr"
	"github.com/katalvlaran/ecgen/graycode"
	"github.com/katalvlaran/ecgen/partition"
	"github.com/katalvlaran/ecgen/sjt"
)

var cloneInts = slices.Clone[[]int, int]

func (a *app) grayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gray N",
		Short: "Binary reflected Gray code over N bits (bit flips)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n := s[0]
			total := func() (uint64, error) { return count.PowerOfTwo(n) }
			if a.cfg.Output.States {
				return output(a, cmd, graycode.Strings(n), cloneInts, total)
			}
			return output(a, cmd, graycode.Flips(n), nil, total)
		},
	}
}

func (a *app) ehrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ehr N",
		Short: "Permutations of N items by star transpositions (swap position 0 with k)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n := s[0]
			total := func() (uint64, error) { return count.Factorial(n) }
			if a.cfg.Output.States {
				return output(a, cmd, ehr.Permutations(n), cloneInts, total)
			}
			return output(a, cmd, ehr.Swaps(n), nil, total)
		},
	}
}

func (a *app) sjtCmd() *cobra.Command {
	var plainMode bool
	cmd := &cobra.Command{
		Use:   "sjt N",
		Short: "Permutations of N items by adjacent swaps (Steinhaus-Johnson-Trotter)",
		Long: `sjt prints the position i of each adjacent swap (i, i+1). The default cyclic
listing has N! swaps and returns to the identity; --plain stops after N!-1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n := s[0]
			mode := sjt.ModeCyclic
			if plainMode {
				mode = sjt.ModePlain
			}
			a.log.Debug("sjt mode", zap.Stringer("mode", mode))
			total := func() (uint64, error) { return count.Factorial(n) }
			if a.cfg.Output.States {
				return output(a, cmd, sjt.Permutations(n, mode), cloneInts, total)
			}
			return output(a, cmd, sjt.Swaps(n, mode), nil, total)
		},
	}
	cmd.Flags().BoolVar(&plainMode, "plain", false, "plain changes: visit each permutation once, no closing swap")
	return cmd
}

func (a *app) bipartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bipart N",
		Short: "Partitions of {1..N} into two blocks (element moves)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n := s[0]
			total := func() (uint64, error) { return count.Stirling2Two(n) }
			if a.cfg.Output.States {
				return output(a, cmd, bipart.RGS(n), cloneInts, total)
			}
			return output(a, cmd, bipart.Moves(n), nil, total)
		},
	}
}

func (a *app) partitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "partition N K",
		Short: "Partitions of {1..N} into K blocks (element moves)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n, k := s[0], s[1]
			total := func() (uint64, error) { return a.counts.Stirling2(n, k) }
			if a.cfg.Output.States {
				return output(a, cmd, partition.RGS(n, k), cloneInts, total)
			}
			return output(a, cmd, partition.Moves(n, k), nil, total)
		},
	}
}

func (a *app) combinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combin N K",
		Short: "K-subsets of N items by revolving door (Eades-McKay swaps)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sizes(args)
			if err != nil {
				return err
			}
			n, k := s[0], s[1]
			total := func() (uint64, error) { return a.counts.Binomial(n, k) }
			if a.cfg.Output.States {
				return output(a, cmd, combin.Subsets(n, k), cloneInts, total)
			}
			return output(a, cmd, combin.Swaps(n, k), nil, total)
		},
	}
}

// output renders seq and, when info logging is on, logs how it relates to
// the expected number of objects. A total that cannot be computed is
// reported, not fatal.
func output[T any](a *app, cmd *cobra.Command, seq iter.Seq[T], clone func(T) T, total func() (uint64, error)) error {
	printed, err := render(cmd.OutOrStdout(), a.cfg.Output.Format, a.cfg.Output.Limit, seq, clone)
	if err != nil {
		return err
	}
	if !a.log.Enabled(zapcore.InfoLevel) {
		return nil
	}

	fields := []zap.Field{zap.Int("printed", printed), zap.Bool("states", a.cfg.Output.States)}
	if objects, err := total(); err != nil {
		a.log.Warn("object count unavailable", zap.Error(err))
	} else {
		fields = append(fields, zap.Uint64("objects", objects))
	}
	a.log.Info("sequence written", fields...)
	return nil
}
