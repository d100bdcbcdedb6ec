package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yanivmo/ruler/grammarfile"
)

// BenchOptions holds the flags of the bench command.
type BenchOptions struct {
	Iterations int
	Attempts   int
}

// BenchReport is the result of a benchmark run.
//
// Timing noise is always positive, so the benchmark runs the iteration
// loop several times and reports the fastest attempt, the way the
// original rulre performance comparison did.
type BenchReport struct {
	RunID       string `json:"run_id"`
	Grammar     string `json:"grammar"`
	Input       string `json:"input"`
	Matched     bool   `json:"matched"`
	Iterations  int    `json:"iterations"`
	Attempts    int    `json:"attempts"`
	BestNsPerOp int64  `json:"best_ns_per_op"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench <grammar.yaml> <input>",
		Short: "Benchmark a grammar against an input",
		Long: `Repeatedly match the input against the grammar and report the
fastest per-match time observed across several attempts.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(rootOpts, opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Iterations, "iterations", 10000, "matches per attempt")
	cmd.Flags().IntVar(&opts.Attempts, "attempts", 5, "attempts; the fastest one is reported")

	return cmd
}

func runBench(rootOpts *RootOptions, opts *BenchOptions, grammarPath, input string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if opts.Iterations < 1 || opts.Attempts < 1 {
		formatter.Error(ErrCodeGeneric, "iterations and attempts must be positive", nil)
		return &ExitError{Code: ExitCommandError, Message: "invalid benchmark options"}
	}

	g, err := grammarfile.Load(grammarPath)
	if err != nil {
		formatter.Error(loadErrorCode(err), err.Error(), nil)
		return &ExitError{Code: ExitCommandError, Message: "loading grammar"}
	}

	m, _ := g.Match(input)

	best := time.Duration(0)
	for attempt := 0; attempt < opts.Attempts; attempt++ {
		start := time.Now()
		for i := 0; i < opts.Iterations; i++ {
			g.Match(input)
		}
		elapsed := time.Since(start)
		if best == 0 || elapsed < best {
			best = elapsed
		}
		formatter.VerboseLog("attempt %d: %v", attempt+1, elapsed)
	}

	report := BenchReport{
		RunID:       uuid.NewString(),
		Grammar:     grammarPath,
		Input:       input,
		Matched:     m != nil,
		Iterations:  opts.Iterations,
		Attempts:    opts.Attempts,
		BestNsPerOp: best.Nanoseconds() / int64(opts.Iterations),
	}

	if rootOpts.Format == "json" {
		return formatter.Success(report)
	}
	return formatter.Success(fmt.Sprintf("run %s: matched=%v %d ns/op (best of %d attempts, %d iterations each)",
		report.RunID, report.Matched, report.BestNsPerOp, report.Attempts, report.Iterations))
}
