package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/epireport/incubation-analysis/consts"
	"github.com/epireport/incubation-analysis/schema"
)

// LoadComparisons reads published estimates from a YAML file. An empty path
// selects the built-in comparator set.
func LoadComparisons(path string) ([]schema.PublishedEstimate, error) {
	if path == "" {
		return consts.AllPublishedEstimates(), nil
	}

	data, err := os.ReadFile(path)
	if nil != err {
		return nil, err
	}

	var list []schema.PublishedEstimate
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse comparisons %s: %w", path, err)
	}
	return list, nil
}

// MergeComparisons appends one table row per published estimate, keyed by
// its source, after the fitted rows.
func MergeComparisons(table *schema.ResultsTable, published []schema.PublishedEstimate) {
	for _, p := range published {
		table.Rows = append(table.Rows, schema.ResultRow{
			Cohort: p.Source,
			Label:  p.Label,
			Value:  p.Value,
			Lo:     p.Lo,
			Hi:     p.Hi,
			Source: schema.SourcePublished,
		})
	}
}
