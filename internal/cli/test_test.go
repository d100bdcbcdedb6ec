package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTest_PassingScenario(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/scenario.yaml"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "PASS: morning-cli (2 cases)")
	assert.Contains(t, output, "1 scenario(s), 0 failed")
}

func TestTest_FailingScenario(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/failing-scenario.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	output := buf.String()
	assert.Contains(t, output, "FAIL: failing")
	assert.Contains(t, output, "expected mismatch at 5, got 21")
}

func TestTest_MultipleScenariosJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/scenario.yaml", "testdata/failing-scenario.yaml"})

	err := cmd.Execute()
	require.Error(t, err, "one failing scenario fails the run")

	var resp struct {
		Status string           `json:"status"`
		Data   []ScenarioReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].Passed)
	assert.False(t, resp.Data[1].Passed)
}

func TestTest_MissingScenario(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewTestCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"testdata/nope.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
