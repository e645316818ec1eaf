package linelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/epireport/incubation-analysis/schema"
	"github.com/epireport/incubation-analysis/utils"
)

const logPrefix = "linelist"

// Load reads the curated line list CSV. Malformed rows are counted,
// logged with their row number and skipped; they never abort the load.
func Load(path string) ([]schema.CaseRecord, int, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, 0, fmt.Errorf("open line list: %w", err)
	}
	defer f.Close()

	records, skipped, err := Read(f)
	if nil != err {
		return nil, 0, err
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"path":    path,
		"loaded":  len(records),
		"skipped": skipped,
	}).Info("line list loaded")
	return records, skipped, nil
}

// Read parses line-list rows from any reader. The first row must be a
// header containing at least an id column.
func Read(r io.Reader) ([]schema.CaseRecord, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if nil != err {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	columns, err := resolveColumns(header)
	if nil != err {
		return nil, 0, err
	}

	var records []schema.CaseRecord
	skipped := 0
	row := 1
	for {
		row++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if nil != err {
			if errors.Is(err, csv.ErrFieldCount) {
				skipped++
				log.WithFields(log.Fields{"prefix": logPrefix, "row": row}).Warn("wrong field count, row skipped")
				continue
			}
			return nil, 0, fmt.Errorf("read row %d: %w", row, err)
		}

		c, err := parseRecord(columns, record)
		if nil != err {
			skipped++
			log.WithFields(log.Fields{"prefix": logPrefix, "row": row, "error": err}).Warn("malformed row skipped")
			continue
		}
		records = append(records, c)
	}
	return records, skipped, nil
}

func parseRecord(columns columnIndex, record []string) (schema.CaseRecord, error) {
	c := schema.CaseRecord{
		ID:          strings.TrimSpace(columns.field(record, colID)),
		Origin:      utils.NormalizePlace(columns.field(record, colOrigin)),
		Destination: utils.NormalizePlace(columns.field(record, colDestination)),
		Sex:         strings.TrimSpace(columns.field(record, colSex)),
	}
	if c.ID == "" {
		return c, fmt.Errorf("empty id")
	}

	dates := []struct {
		key  string
		dest **time.Time
	}{
		{colExposureLeft, &c.ExposureLeft},
		{colExposureRight, &c.ExposureRight},
		{colOnsetLeft, &c.OnsetLeft},
		{colOnsetRight, &c.OnsetRight},
		{colFeverLeft, &c.FeverLeft},
		{colFeverRight, &c.FeverRight},
		{colPresented, &c.Presented},
		{colReported, &c.Reported},
	}
	for _, d := range dates {
		t, err := utils.ParseDate(columns.field(record, d.key))
		if nil != err {
			return c, fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dest = t
	}

	var err error
	if c.Age, err = parseCount(columns.field(record, colAge)); nil != err {
		return c, fmt.Errorf("age: %w", err)
	}
	if c.Reviewers, err = parseCount(columns.field(record, colReviewers)); nil != err {
		return c, fmt.Errorf("reviewers: %w", err)
	}
	return c, nil
}

// parseCount reads a small non-negative integer cell, empty meaning zero.
func parseCount(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if nil != err {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
