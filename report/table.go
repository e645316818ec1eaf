package report

import (
	"time"

	"github.com/epireport/incubation-analysis/consts"
	"github.com/epireport/incubation-analysis/schema"
)

// BuildTable flattens fitted cohorts into the unified results table. Cohorts
// appear in the fixed reporting order, each one listing its parameters, then
// the requested quantiles, then the mean.
func BuildTable(runID string, generatedAt time.Time, results []schema.FitResult) schema.ResultsTable {
	byName := make(map[string]schema.FitResult, len(results))
	for _, r := range results {
		byName[r.Cohort] = r
	}

	ordered := make([]schema.FitResult, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, name := range consts.CohortOrder {
		if r, ok := byName[name]; ok {
			ordered = append(ordered, r)
			seen[name] = true
		}
	}
	for _, r := range results {
		if !seen[r.Cohort] {
			ordered = append(ordered, r)
		}
	}

	table := schema.ResultsTable{RunID: runID, GeneratedAt: generatedAt}
	for _, r := range ordered {
		for _, p := range r.Params {
			table.Rows = append(table.Rows, schema.ResultRow{
				Cohort: r.Cohort,
				Label:  p.Name,
				Value:  p.Value,
				Lo:     p.Lo,
				Hi:     p.Hi,
				Source: schema.SourceThisAnalysis,
			})
		}
		for _, q := range r.Quantiles {
			table.Rows = append(table.Rows, schema.ResultRow{
				Cohort: r.Cohort,
				Label:  q.Label,
				Value:  q.Value,
				Lo:     q.Lo,
				Hi:     q.Hi,
				Source: schema.SourceThisAnalysis,
			})
		}
		table.Rows = append(table.Rows, schema.ResultRow{
			Cohort: r.Cohort,
			Label:  "mean",
			Value:  r.Mean.Value,
			Lo:     r.Mean.Lo,
			Hi:     r.Mean.Hi,
			Source: schema.SourceThisAnalysis,
		})
	}
	return table
}
