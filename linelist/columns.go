package linelist

import (
	"fmt"
	"strings"
)

// canonical column keys
const (
	colID            = "id"
	colExposureLeft  = "exposure_left"
	colExposureRight = "exposure_right"
	colOnsetLeft     = "onset_left"
	colOnsetRight    = "onset_right"
	colFeverLeft     = "fever_left"
	colFeverRight    = "fever_right"
	colPresented     = "presented"
	colReported      = "reported"
	colOrigin        = "origin"
	colDestination   = "destination"
	colAge           = "age"
	colSex           = "sex"
	colReviewers     = "reviewers"
)

// headerAliases maps the header spellings curators actually use to the
// canonical key. Lookup is case-insensitive with spaces folded to
// underscores.
var headerAliases = map[string]string{
	"id":      colID,
	"case":    colID,
	"case_id": colID,
	"case_no": colID,
	"uid":     colID,

	"exposure_left":  colExposureLeft,
	"el":             colExposureLeft,
	"exposure_start": colExposureLeft,
	"exposure_from":  colExposureLeft,

	"exposure_right": colExposureRight,
	"er":             colExposureRight,
	"exposure_end":   colExposureRight,
	"exposure_to":    colExposureRight,

	"onset_left":         colOnsetLeft,
	"sl":                 colOnsetLeft,
	"symptom_left":       colOnsetLeft,
	"symptom_onset_left": colOnsetLeft,
	"onset_start":        colOnsetLeft,

	"onset_right":         colOnsetRight,
	"sr":                  colOnsetRight,
	"symptom_right":       colOnsetRight,
	"symptom_onset_right": colOnsetRight,
	"onset_end":           colOnsetRight,

	"fever_left":  colFeverLeft,
	"fl":          colFeverLeft,
	"fever_start": colFeverLeft,

	"fever_right": colFeverRight,
	"fr":          colFeverRight,
	"fever_end":   colFeverRight,

	"presented":           colPresented,
	"presentation":        colPresented,
	"date_presentation":   colPresented,
	"presented_to_clinic": colPresented,
	"hospital_visit":      colPresented,

	"reported":       colReported,
	"publication":    colReported,
	"date_published": colReported,
	"reported_date":  colReported,

	"origin":         colOrigin,
	"origin_country": colOrigin,
	"residence":      colOrigin,

	"destination":       colDestination,
	"reporting_country": colDestination,
	"detected_in":       colDestination,

	"age": colAge,

	"sex":    colSex,
	"gender": colSex,

	"reviewers":      colReviewers,
	"reviewer_count": colReviewers,
	"review_count":   colReviewers,
}

type columnIndex map[string]int

// resolveColumns matches a header row against the alias table. Unknown
// headers are ignored so curators can keep free-form note columns. Only the
// id column is mandatory.
func resolveColumns(header []string) (columnIndex, error) {
	index := columnIndex{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		canonical, ok := headerAliases[key]
		if !ok {
			continue
		}
		if _, dup := index[canonical]; dup {
			return nil, fmt.Errorf("duplicate column %q in header", canonical)
		}
		index[canonical] = i
	}
	if _, ok := index[colID]; !ok {
		return nil, fmt.Errorf("line list has no id column")
	}
	return index, nil
}

// field returns the cell for a canonical key, empty when the column is
// absent.
func (c columnIndex) field(record []string, key string) string {
	i, ok := c[key]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
