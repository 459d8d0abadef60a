package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/hanscan/internal/ports"
)

var sample = []ports.ScanResult{
	{FilePath: "/r/src/b.ts", Line: 3, Column: 5, Text: "乙"},
	{FilePath: "/r/a.ts", Line: 1, Column: 12, Text: "甲"},
	{FilePath: "/r/src/b.ts", Line: 1, Column: 9, Text: "丙"},
}

func TestRenderText_SortedByFileLineColumn(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResults(&sb, "/r", sample, "text"))

	out := sb.String()
	assert.Contains(t, out, "3 matches")
	assert.Contains(t, out, "2 files")

	// a.ts before b.ts, and b.ts line 1 before line 3.
	iA := strings.Index(out, "a.ts:1:12")
	iB1 := strings.Index(out, "src/b.ts:1:9")
	iB3 := strings.Index(out, "src/b.ts:3:5")
	require.True(t, iA >= 0 && iB1 >= 0 && iB3 >= 0, "output: %q", out)
	assert.Less(t, iA, iB1)
	assert.Less(t, iB1, iB3)
}

func TestRenderNDJSON_OneObjectPerLine(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResults(&sb, "/r", sample, "ndjson"))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	var r ports.ScanResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &r))
	assert.Equal(t, "/r/src/b.ts", r.FilePath)
	assert.Equal(t, "乙", r.Text)
}

func TestRenderJSON_Array(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, renderResults(&sb, "/r", sample, "json"))

	var decoded []ports.ScanResult
	require.NoError(t, json.Unmarshal([]byte(sb.String()), &decoded))
	assert.ElementsMatch(t, sample, decoded)
}
