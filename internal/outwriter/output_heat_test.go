package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaettig/gitpulse/schema"
)

func TestWriteHeatCSV(t *testing.T) {
	modified := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []schema.FileHeatRecord{
		{
			Path:         "core/parser.go",
			Commits:      12,
			LastModified: modified,
			NetLines:     340,
			Churn:        900,
			Category:     schema.CategoryApplication,
			Score:        2.5,
		},
	}

	var buf bytes.Buffer
	err := writeHeatCSV(&buf, records, testWriterConfig())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "path,commits,net_lines,churn,category,last_modified,score", lines[0])
	assert.Equal(t, "core/parser.go,12,340,900,application,2026-03-01T12:00:00Z,2.5", lines[1])
}

func TestWriteHeatTable(t *testing.T) {
	records := []schema.FileHeatRecord{
		{Path: "core/parser.go", Commits: 12, NetLines: 340, Churn: 900, Category: schema.CategoryApplication, Score: 2.5},
		{Path: "README.md", Commits: 1, NetLines: 20, Churn: 20, Category: schema.CategoryDocumentation, Score: 0.1},
	}
	topSize := []schema.FileRank{{Path: "core/parser.go", Value: 340}}
	topChurn := []schema.FileRank{{Path: "core/parser.go", Value: 900}}

	var buf bytes.Buffer
	err := writeHeatTable(&buf, records, topSize, topChurn, testWriterConfig(), time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "core/parser.go")
	assert.Contains(t, out, "Hot")
	assert.Contains(t, out, "Cold")
	assert.Contains(t, out, "Top files by size (net lines):")
	assert.Contains(t, out, "Top files by churn:")
	assert.Contains(t, out, "Showing top 2 files")
}

func TestWriteHeatTableSkipsEmptyRankViews(t *testing.T) {
	var buf bytes.Buffer
	err := writeHeatTable(&buf, nil, nil, nil, testWriterConfig(), time.Millisecond)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "Top files by size")
	assert.NotContains(t, out, "Top files by churn")
}
