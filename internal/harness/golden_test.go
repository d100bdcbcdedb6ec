package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Morning(t *testing.T) {
	scenario, err := LoadScenario("testdata/morning.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, scenario))
}

func TestRenderReport_FailingCase(t *testing.T) {
	scenario := inlineScenario(
		Case{Name: "wrong", Input: "hello world", Want: WantMismatch},
	)

	result, err := Run(scenario)
	require.NoError(t, err)

	report := string(RenderReport(result))
	assert.Contains(t, report, "scenario: inline")
	assert.Contains(t, report, "case: wrong")
	assert.Contains(t, report, `FAIL: expected a mismatch, got match "hello world"`)
	assert.Contains(t, report, "status: FAIL")
}
