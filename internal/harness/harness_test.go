package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yanivmo/ruler/grammarfile"
)

// inlineScenario builds a scenario around a small grammar with one named
// token:
//
//	root = greeting, ' world';
//	greeting = 'hello' | 'goodbye';
func inlineScenario(cases ...Case) *Scenario {
	regex := func(pattern string) grammarfile.Expr {
		return grammarfile.Expr{Regex: &pattern}
	}
	return &Scenario{
		Name: "inline",
		Grammar: &grammarfile.Document{
			Tokens: []grammarfile.Binding{
				{Name: "greeting", Rule: grammarfile.Expr{OneOf: []grammarfile.Expr{regex("hello"), regex("goodbye")}}},
			},
			Root: &grammarfile.Expr{Seq: []grammarfile.Expr{
				{Ref: "greeting"},
				regex(" world"),
			}},
		},
		Cases: cases,
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRun_PassingCases(t *testing.T) {
	scenario := inlineScenario(
		Case{
			Input:  "hello world",
			Want:   WantMatch,
			Text:   strPtr("hello world"),
			Tokens: map[string]string{"greeting": "hello"},
		},
		Case{
			Input:    "hi world",
			Want:     WantMismatch,
			Position: intPtr(0),
		},
	)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Passed())

	require.Len(t, result.Cases, 2)
	assert.Equal(t, "case 1", result.Cases[0].Name, "unnamed cases get positional labels")
	assert.Equal(t, `match "hello world"`, result.Cases[0].Outcome)
	assert.Equal(t, "mismatch at 0", result.Cases[1].Outcome)
	assert.NotEmpty(t, result.Cases[1].Diagnostic)
}

func TestRun_WrongOutcome(t *testing.T) {
	scenario := inlineScenario(
		Case{Name: "should fail", Input: "hello world", Want: WantMismatch},
	)

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Passed())

	require.Len(t, result.Cases[0].Failures, 1)
	assert.Contains(t, result.Cases[0].Failures[0], "expected a mismatch")
}

func TestRun_WrongTokenText(t *testing.T) {
	scenario := inlineScenario(
		Case{
			Input:  "goodbye world",
			Want:   WantMatch,
			Tokens: map[string]string{"greeting": "hello"},
		},
	)

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Cases[0].Failures, 1)
	assert.Contains(t, result.Cases[0].Failures[0], `token greeting`)
}

func TestRun_MissingTokenPath(t *testing.T) {
	scenario := inlineScenario(
		Case{
			Input:  "hello world",
			Want:   WantMatch,
			Tokens: map[string]string{"greeting.deeper": "x"},
		},
	)

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Cases[0].Failures, 1)
	assert.Contains(t, result.Cases[0].Failures[0], "not present")
}

func TestRun_WrongPosition(t *testing.T) {
	scenario := inlineScenario(
		Case{Input: "hi world", Want: WantMismatch, Position: intPtr(5)},
	)

	result, err := Run(scenario)
	require.NoError(t, err)

	require.Len(t, result.Cases[0].Failures, 1)
	assert.Contains(t, result.Cases[0].Failures[0], "expected mismatch at 5, got 0")
}

func TestRun_BrokenGrammar(t *testing.T) {
	pattern := "("
	scenario := &Scenario{
		Name:    "broken",
		Grammar: &grammarfile.Document{Root: &grammarfile.Expr{Regex: &pattern}},
		Cases:   []Case{{Input: "a", Want: WantMatch}},
	}

	_, err := Run(scenario)
	require.Error(t, err)
}
