package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its rendered report,
// rendered diagnostics included, against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, RenderReport(result))
	return nil
}

// RenderReport produces a deterministic plain-text report of a scenario
// run: one block per case with the input, the outcome, the requested
// tokens and the rendered diagnostic for mismatches.
func RenderReport(result *Result) []byte {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scenario: %s\n", result.Scenario.Name)

	for i, cr := range result.Cases {
		fmt.Fprintf(&buf, "\ncase: %s\n", cr.Name)
		fmt.Fprintf(&buf, "  input: %q\n", cr.Input)
		fmt.Fprintf(&buf, "  outcome: %s\n", cr.Outcome)

		if c := result.Scenario.Cases[i]; c.Want == WantMatch && cr.Passed() {
			for _, path := range sortedPaths(c.Tokens) {
				fmt.Fprintf(&buf, "  token %s = %q\n", path, c.Tokens[path])
			}
		}
		if cr.Diagnostic != "" {
			for _, line := range strings.Split(cr.Diagnostic, "\n") {
				fmt.Fprintf(&buf, "  %s\n", line)
			}
		}
		for _, failure := range cr.Failures {
			fmt.Fprintf(&buf, "  FAIL: %s\n", failure)
		}
	}

	status := "PASS"
	if !result.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(&buf, "\nstatus: %s\n", status)
	return []byte(buf.String())
}
