package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ecgen/count"
	"github.com/katalvlaran/ecgen/internal/config"
)

func (a *app) countCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the size of a sequence",
	}

	two := func(use, short string, fn func(n, k int) (uint64, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := sizes(args)
				if err != nil {
					return err
				}
				v, err := fn(s[0], s[1])
				if err != nil {
					return err
				}
				return a.printValue(cmd, v)
			},
		}
	}
	one := func(use, short string, fn func(n int) (uint64, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := sizes(args)
				if err != nil {
					return err
				}
				v, err := fn(s[0])
				if err != nil {
					return err
				}
				return a.printValue(cmd, v)
			},
		}
	}

	cmd.AddCommand(
		two("binomial N K", "Number of K-subsets of N items", a.counts.Binomial),
		two("stirling N K", "Number of partitions of N items into K blocks", a.counts.Stirling2),
		one("bipart N", "Number of partitions of N items into two blocks", count.Stirling2Two),
		one("factorial N", "Number of permutations of N items", count.Factorial),
		one("pow2 N", "Number of binary strings of length N", count.PowerOfTwo),
		one("fib N", "N-th Fibonacci number (1 <= N <= 93)", func(n int) (uint64, error) {
			if n < 1 || n > 93 {
				return 0, errors.Wrapf(ErrInvalidSize, "fib position %d", n)
			}
			return count.Fib(n), nil
		}),
	)
	return cmd
}

func (a *app) printValue(cmd *cobra.Command, v uint64) error {
	a.log.Debug("count computed", zap.String("function", cmd.Name()), zap.Uint64("value", v))
	return writeValue(cmd.OutOrStdout(), a.cfg.Output.Format, v)
}

func writeValue(w io.Writer, format string, v uint64) error {
	var err error
	switch format {
	case config.FormatJSON:
		err = json.NewEncoder(w).Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	default:
		_, err = fmt.Fprintln(w, v)
	}
	return errors.Wrap(err, "write")
}
