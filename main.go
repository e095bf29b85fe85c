package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emmess1/aoc25/machine"
	"github.com/emmess1/aoc25/runner"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	workers int
	budget  uint64
	config  string
	variant string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "aoc25",
		Short: "Minimum-press solver for button machines",
		Long: "Solves button machines: the minimum number of presses toggling indicator\n" +
			"lights to a pattern, or incrementing counters to exact joltage targets.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.AddCommand(newSolveCommand(opts))
	cmd.AddCommand(newValidateCommand(opts))
	return cmd
}

func newSolveCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <input-file>",
		Short: "Solve every machine in an input file and sum the minimums",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.variant, "variant", "both", "variant to solve (toggle|joltage|both)")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "number of machines solved concurrently")
	cmd.Flags().Uint64Var(&opts.budget, "budget", 0, "per-machine search budget in nodes (0 = unlimited)")
	cmd.Flags().StringVar(&opts.config, "config", "", "YAML run configuration, overrides the other flags")
	return cmd
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Check that an input file parses, without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			machines, err := parseFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d machines\n", len(machines))
			return nil
		},
	}
}

func solve(cmd *cobra.Command, opts *options, path string) error {
	setupLogging(opts.verbose)
	cfg := runner.Config{Workers: opts.workers, Budget: opts.budget, Verbose: opts.verbose}
	if opts.config != "" {
		var err error
		if cfg, err = runner.LoadConfig(opts.config); err != nil {
			return err
		}
	}
	variant, err := runner.ParseVariant(opts.variant)
	if err != nil {
		return err
	}
	machines, err := parseFile(path)
	if err != nil {
		return err
	}
	slog.Info("solving machines", "count", len(machines), "workers", cfg.Workers)
	sum, err := runner.New(cfg, slog.Default()).Run(cmd.Context(), machines, variant)
	if err != nil {
		return err
	}
	return sum.WriteText(cmd.OutOrStdout())
}

func parseFile(path string) ([]machine.Machine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	machines, err := machine.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %v", path, err)
	}
	return machines, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
