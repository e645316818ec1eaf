package report

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epireport/incubation-analysis/schema"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	table := schema.ResultsTable{
		RunID: "run-1",
		Rows: []schema.ResultRow{
			{Cohort: "all", Label: "mean", Value: 6.5, Lo: 5.5, Hi: 7.8, Source: schema.SourceThisAnalysis},
			{Cohort: "li2020", Label: "95%", Value: 12.5, Lo: 9.2, Hi: 18.0, Source: schema.SourcePublished},
		},
	}

	require.NoError(t, WriteCSV(path, table))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"cohort", "label", "value", "ci_low", "ci_high", "source"}, records[0])
	assert.Equal(t, []string{"all", "mean", "6.500", "5.500", "7.800", "this analysis"}, records[1])
	assert.Equal(t, []string{"li2020", "95%", "12.500", "9.200", "18.000", "published"}, records[2])
}

func TestWriteCSVBlanksNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	table := schema.ResultsTable{
		RunID: "run-1",
		Rows: []schema.ResultRow{
			{Cohort: "all", Label: "99%", Value: 14.2, Lo: math.NaN(), Hi: math.NaN(), Source: schema.SourceThisAnalysis},
		},
	}

	require.NoError(t, WriteCSV(path, table))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "14.200", records[1][2])
	assert.Equal(t, "", records[1][3])
	assert.Equal(t, "", records[1][4])
}

func TestWriteCSVBadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "results.csv"), schema.ResultsTable{})
	assert.Error(t, err)
}
