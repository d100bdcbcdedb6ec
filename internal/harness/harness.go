package harness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yanivmo/ruler"
	"github.com/yanivmo/ruler/grammarfile"
)

// Result holds the outcome of running a scenario.
type Result struct {
	Scenario *Scenario
	Cases    []CaseResult
}

// Passed reports whether every case passed.
func (r *Result) Passed() bool {
	for _, c := range r.Cases {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// CaseResult holds the outcome of a single case.
type CaseResult struct {
	// Name is the case label from the scenario.
	Name string

	// Input is the matched text.
	Input string

	// Outcome summarizes what the grammar did, e.g. `match "abc"` or
	// `mismatch at 21`.
	Outcome string

	// Diagnostic is the rendered mismatch when one was produced.
	Diagnostic string

	// Failures lists every expectation the case missed; empty means the
	// case passed.
	Failures []string
}

// Passed reports whether the case met all its expectations.
func (c *CaseResult) Passed() bool {
	return len(c.Failures) == 0
}

// Run executes every case of the scenario against its grammar.
// Run returns an error only when the scenario itself is unusable; case
// failures are reported through the Result.
func Run(scenario *Scenario) (*Result, error) {
	g, err := buildGrammar(scenario)
	if err != nil {
		return nil, fmt.Errorf("building scenario grammar: %w", err)
	}

	result := &Result{Scenario: scenario}
	for i, c := range scenario.Cases {
		result.Cases = append(result.Cases, runCase(g, c, i))
	}
	return result, nil
}

func buildGrammar(scenario *Scenario) (*ruler.Grammar, error) {
	if scenario.Grammar != nil {
		return grammarfile.Build(scenario.Grammar)
	}
	return grammarfile.Load(scenario.GrammarFile)
}

func runCase(g *ruler.Grammar, c Case, index int) CaseResult {
	cr := CaseResult{Name: c.Name, Input: c.Input}
	if cr.Name == "" {
		cr.Name = fmt.Sprintf("case %d", index+1)
	}

	m, mm := g.Match(c.Input)
	if mm != nil {
		cr.Outcome = fmt.Sprintf("mismatch at %d", mm.Position())
		cr.Diagnostic = mm.Render(c.Input)
	} else {
		cr.Outcome = fmt.Sprintf("match %q", m.Text())
	}

	switch c.Want {
	case WantMatch:
		if m == nil {
			cr.Failures = append(cr.Failures, fmt.Sprintf("expected a match, got mismatch at %d", mm.Position()))
			return cr
		}
		if c.Text != nil && m.Text() != *c.Text {
			cr.Failures = append(cr.Failures, fmt.Sprintf("expected consumed text %q, got %q", *c.Text, m.Text()))
		}
		for _, path := range sortedPaths(c.Tokens) {
			sub, ok := lookupToken(m, path)
			if !ok {
				cr.Failures = append(cr.Failures, fmt.Sprintf("token %s not present in match", path))
				continue
			}
			if sub.Text() != c.Tokens[path] {
				cr.Failures = append(cr.Failures, fmt.Sprintf("token %s: expected %q, got %q", path, c.Tokens[path], sub.Text()))
			}
		}

	case WantMismatch:
		if mm == nil {
			cr.Failures = append(cr.Failures, fmt.Sprintf("expected a mismatch, got match %q", m.Text()))
			return cr
		}
		if c.Position != nil && mm.Position() != *c.Position {
			cr.Failures = append(cr.Failures, fmt.Sprintf("expected mismatch at %d, got %d", *c.Position, mm.Position()))
		}
	}
	return cr
}

// lookupToken resolves a dotted path through nested submatches.
func lookupToken(m *ruler.Match, path string) (*ruler.Match, bool) {
	for _, part := range strings.Split(path, ".") {
		var ok bool
		if m, ok = m.Get(part); !ok {
			return nil, false
		}
	}
	return m, true
}

func sortedPaths(tokens map[string]string) []string {
	paths := make([]string, 0, len(tokens))
	for path := range tokens {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
