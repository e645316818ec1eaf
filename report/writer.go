package report

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/epireport/incubation-analysis/schema"
	"github.com/epireport/incubation-analysis/store"
)

const logPrefix = "report"

const (
	csvFilename    = "results.csv"
	figureFilename = "incubation_cdf.png"
)

// Writer lands the artifacts of one run: the CSV table, the CDF figure and
// the result database rows.
type Writer struct {
	// Dir receives the file artifacts. Created if absent.
	Dir string
	// Store receives the run descriptor and table rows. Nil skips the
	// database entirely.
	Store store.ResultStore
}

// Write persists everything for one run.
func (w Writer) Write(info schema.RunInfo, table schema.ResultsTable, results []schema.FitResult) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return err
	}

	csvPath := filepath.Join(w.Dir, csvFilename)
	if err := WriteCSV(csvPath, table); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"path":   csvPath,
		"rows":   len(table.Rows),
	}).Info("results table written")

	figPath := filepath.Join(w.Dir, figureFilename)
	if err := RenderCurves(figPath, results); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"path":   figPath,
	}).Info("figure written")

	if w.Store == nil {
		return nil
	}
	if err := w.Store.SaveRun(info); err != nil {
		return err
	}
	if err := w.Store.SaveResults(table); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"run_id": info.ID,
	}).Info("results saved to database")
	return nil
}
