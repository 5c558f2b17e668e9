// SPDX-License-Identifier: MIT

// Command matrixtest runs the matrix harness from the command line.
//
//	matrixtest -t            predefined transpose and multiply tests
//	matrixtest -r            random tests
//	matrixtest -s 512        performance test on a 512×512 random matrix
//	matrixtest -t -o         also print every matrix
//
// At least one of -t, -r or -s is required. The exit status is 1 when any
// check failed.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/vmatrix/harness"
	"github.com/katalvlaran/vmatrix/matrix"
	"github.com/katalvlaran/vmatrix/mmapmatrix"
	"github.com/spf13/cobra"
)

// errChecksFailed is returned when the harness counted failures.
var errChecksFailed = errors.New("checks failed")

// errNoMode is returned when none of -t, -r or -s was given.
var errNoMode = errors.New("one of -t, -r or -s is required")

type config struct {
	output     bool
	predefined bool
	random     bool
	perfSize   int
	seed       int64
	variants   []string
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command with args and reports any failure,
// including flag and usage errors, on stderr.
func execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		log.New(stderr, "matrixtest: ", 0).Print(err)
	}

	return err
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:           "matrixtest",
		Short:         "Check every matrix variant against a reference multiply",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.predefined && !cfg.random && cfg.perfSize <= 0 {
				fmt.Fprint(stderr, cmd.UsageString())
				return errNoMode
			}

			return run(cfg, stdout, log.New(stderr, "matrixtest: ", 0))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprint(stderr, c.UsageString())
		return err
	})

	f := cmd.Flags()
	f.BoolVarP(&cfg.output, "output", "o", false, "print matrices")
	f.BoolVarP(&cfg.predefined, "predefined-tests", "t", false, "run predefined tests")
	f.BoolVarP(&cfg.random, "random-tests", "r", false, "run random tests")
	f.IntVarP(&cfg.perfSize, "perf-matrix-size", "s", 0, "run a performance test on N×N matrices")
	f.Int64Var(&cfg.seed, "seed", harness.DefaultSeed, "random seed")
	f.StringSliceVar(&cfg.variants, "variants", nil,
		"comma-separated variants to test (default all; "+mmapmatrix.ClassName+" is also accepted)")

	return cmd
}

// run executes the selected suites and reports errChecksFailed when the
// harness counted any failure.
func run(cfg config, out io.Writer, logger *log.Logger) error {
	variants, cleanup, err := parseVariants(cfg.variants)
	if err != nil {
		return err
	}
	defer cleanup()

	r := harness.NewRunner(out, logger, cfg.output, variants)
	if cfg.predefined {
		r.PredefinedTests()
	}
	if cfg.random {
		r.RandomTests(cfg.seed)
	}
	if cfg.perfSize > 0 {
		r.PerfTests(cfg.perfSize, cfg.seed)
	}

	if n := r.Errors(); n > 0 {
		return fmt.Errorf("%w: %d error(s)", errChecksFailed, n)
	}

	return nil
}

// parseVariants resolves variant names. The mapped variant gets its own
// temporary directory, removed by cleanup.
func parseVariants(names []string) ([]matrix.Variant, func(), error) {
	cleanup := func() {}
	if len(names) == 0 {
		return matrix.Variants(), cleanup, nil
	}

	var out []matrix.Variant
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != mmapmatrix.ClassName {
			v, err := matrix.LookupVariant(name)
			if err != nil {
				cleanup()
				return nil, func() {}, err
			}
			out = append(out, v)
			continue
		}
		dir, err := os.MkdirTemp("", "matrixtest-")
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("temp dir for %s: %w", name, err)
		}
		prev := cleanup
		cleanup = func() { prev(); _ = os.RemoveAll(dir) }
		out = append(out, mmapmatrix.Variant(dir))
	}

	return out, cleanup, nil
}
