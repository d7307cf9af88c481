package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runIntervalsJSON(t *testing.T, args ...string) IntervalsResult {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewIntervalsCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result IntervalsResult
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestIntervals_BoundedWindow(t *testing.T) {
	result := runIntervalsJSON(t,
		"Mo-Fr 09:00-17:00",
		"--from", "2024-06-10 00:00",
		"--to", "2024-06-11 00:00",
	)

	require.Len(t, result.Intervals, 3)
	assert.Equal(t, IntervalRecord{Start: "2024-06-10 00:00", End: "2024-06-10 09:00", State: "closed"}, result.Intervals[0])
	assert.Equal(t, IntervalRecord{Start: "2024-06-10 09:00", End: "2024-06-10 17:00", State: "open"}, result.Intervals[1])
	assert.Equal(t, IntervalRecord{Start: "2024-06-10 17:00", End: "2024-06-11 00:00", State: "closed"}, result.Intervals[2])
	assert.False(t, result.Truncated)
}

func TestIntervals_UnboundedRequiresLimit(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewIntervalsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"24/7", "--from", "2024-06-10 00:00"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "--limit")
}

func TestIntervals_UnboundedWithLimit(t *testing.T) {
	result := runIntervalsJSON(t,
		"Mo-Su 09:00-17:00",
		"--from", "2024-06-10 00:00",
		"--limit", "4",
	)

	require.Len(t, result.Intervals, 4)
	assert.True(t, result.Truncated)
	assert.Equal(t, "closed", result.Intervals[0].State)
	assert.Equal(t, "open", result.Intervals[1].State)
}

func TestIntervals_UnboundedEndIsAbsent(t *testing.T) {
	result := runIntervalsJSON(t,
		"24/7",
		"--from", "2024-06-10 00:00",
		"--limit", "5",
	)

	require.Len(t, result.Intervals, 1)
	assert.Empty(t, result.Intervals[0].End, "an interval reaching the date limit has no end")
	assert.Equal(t, "open", result.Intervals[0].State)
	assert.False(t, result.Truncated)
}

func TestIntervals_Annotations(t *testing.T) {
	result := runIntervalsJSON(t,
		`Mo 09:00-17:00 "by appointment"`,
		"--from", "2024-06-10 09:00",
		"--to", "2024-06-10 17:00",
	)

	require.Len(t, result.Intervals, 1)
	assert.Equal(t, []string{"by appointment"}, result.Intervals[0].Annotations)
}

func TestIntervals_TextOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewIntervalsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{
		"Mo-Fr 09:00-17:00",
		"--from", "2024-06-10 00:00",
		"--to", "2024-06-11 00:00",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "2024-06-10 09:00  2024-06-10 17:00  open")
}

func TestIntervals_InvalidExpression(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewIntervalsCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"24/77", "--limit", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
