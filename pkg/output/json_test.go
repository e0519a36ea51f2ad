package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/ccollicutt/gclidtime/pkg/gclid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, f *JSONFormatter, outcome *Outcome) JSONOutput {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Format(context.Background(), outcome, &buf))

	var parsed JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed), "output is not valid JSON")
	return parsed
}

func TestNewJSONFormatter(t *testing.T) {
	assert.Equal(t, "json", NewJSONFormatter(FormatOptions{}).Name())
}

func TestJSONFormatter_Success(t *testing.T) {
	report := createTestReport(t)
	parsed := decodeJSON(t, NewJSONFormatter(FormatOptions{}), NewOutcome(report.Token, report, nil))

	require.True(t, parsed.Found)
	require.NotNil(t, parsed.Best)
	assert.Equal(t, "1700000000123456", parsed.Best.Value)
	assert.Equal(t, "microseconds", parsed.Best.Unit)
	assert.Equal(t, "2023-11-14T22:13:20.123456+00:00", parsed.Best.UTC)
	assert.Equal(t, "America/New_York", parsed.Best.Zone)
	assert.Nil(t, parsed.Candidates, "candidates are omitted by default")
	assert.Nil(t, parsed.Metadata, "metadata is omitted by default")
}

func TestJSONFormatter_AllVerbose(t *testing.T) {
	report := createTestReport(t)
	parsed := decodeJSON(t, NewJSONFormatter(FormatOptions{All: true, Verbose: true}), NewOutcome(report.Token, report, nil))

	require.Len(t, parsed.Candidates, 3)
	assert.Empty(t, parsed.Candidates[0].Unit)
	assert.Equal(t, "microseconds", parsed.Candidates[1].Unit)
	require.NotNil(t, parsed.Metadata)
	assert.Equal(t, "run-abc", parsed.Metadata.RunID)
}

func TestJSONFormatter_NoCandidate(t *testing.T) {
	report := createTestReport(t)
	report.Best = nil

	parsed := decodeJSON(t, NewJSONFormatter(FormatOptions{}), NewOutcome(report.Token, report, nil))
	assert.False(t, parsed.Found)
	assert.Equal(t, MsgNoCandidate, parsed.Message)
	assert.Empty(t, parsed.Error)
}

func TestJSONFormatter_Errors(t *testing.T) {
	parsed := decodeJSON(t, NewJSONFormatter(FormatOptions{}), NewOutcome("", nil, gclid.ErrEmptyInput))
	assert.Equal(t, MsgEmpty, parsed.Error)

	_, err := gclid.Decode("ab!d")
	parsed = decodeJSON(t, NewJSONFormatter(FormatOptions{}), NewOutcome("ab!d", nil, err))
	assert.Equal(t, 4, parsed.Length)
	assert.Nil(t, parsed.Best, "best is omitted on decode error")
	assert.NotEmpty(t, parsed.Error)
}
