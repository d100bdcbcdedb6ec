package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanivmo/ruler/internal/harness"
)

// ScenarioReport summarizes one scenario run for JSON output.
type ScenarioReport struct {
	Name   string       `json:"name"`
	Passed bool         `json:"passed"`
	Cases  []CaseReport `json:"cases"`
}

// CaseReport summarizes one case for JSON output.
type CaseReport struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Outcome  string   `json:"outcome"`
	Failures []string `json:"failures,omitempty"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test <scenario.yaml>...",
		Short: "Run grammar conformance scenarios",
		Long: `Run one or more scenario files against their grammars and report
which cases met their expected outcomes.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(rootOpts, args, cmd)
		},
	}
}

func runTest(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	reports := make([]ScenarioReport, 0, len(paths))
	failed := 0

	for _, path := range paths {
		scenario, err := harness.LoadScenario(path)
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "loading scenario", Err: err}
		}

		result, err := harness.Run(scenario)
		if err != nil {
			formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return &ExitError{Code: ExitCommandError, Message: "running scenario", Err: err}
		}

		report := scenarioReport(result)
		reports = append(reports, report)
		if !report.Passed {
			failed++
		}

		if opts.Format != "json" {
			printScenarioReport(formatter, result)
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(reports); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "%d scenario(s), %d failed\n", len(reports), failed)
	}

	if failed > 0 {
		return &ExitError{Code: ExitFailure, Message: fmt.Sprintf("%d scenario(s) failed", failed)}
	}
	return nil
}

func scenarioReport(result *harness.Result) ScenarioReport {
	report := ScenarioReport{Name: result.Scenario.Name, Passed: result.Passed()}
	for _, cr := range result.Cases {
		report.Cases = append(report.Cases, CaseReport{
			Name:     cr.Name,
			Passed:   cr.Passed(),
			Outcome:  cr.Outcome,
			Failures: cr.Failures,
		})
	}
	return report
}

func printScenarioReport(formatter *OutputFormatter, result *harness.Result) {
	status := "PASS"
	if !result.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(formatter.Writer, "%s: %s (%d cases)\n", status, result.Scenario.Name, len(result.Cases))

	for _, cr := range result.Cases {
		if cr.Passed() {
			formatter.VerboseLog("  ok: %s -> %s", cr.Name, cr.Outcome)
			continue
		}
		for _, failure := range cr.Failures {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", cr.Name, failure)
		}
		if cr.Diagnostic != "" {
			fmt.Fprintln(formatter.Writer, indentLines(cr.Diagnostic, "  "))
		}
	}
}

func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
