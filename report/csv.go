package report

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/epireport/incubation-analysis/schema"
)

var csvHeader = []string{"cohort", "label", "value", "ci_low", "ci_high", "source"}

// WriteCSV writes the unified results table to path, one row per estimate.
func WriteCSV(path string, table schema.ResultsTable) error {
	f, err := os.Create(path)
	if nil != err {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range table.Rows {
		record := []string{
			r.Cohort,
			r.Label,
			formatValue(r.Value),
			formatValue(r.Lo),
			formatValue(r.Hi),
			r.Source,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
