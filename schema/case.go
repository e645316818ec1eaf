package schema

import (
	"time"
)

// CaseRecord is one row of the hand-curated line list. Every date field is
// optional at this stage; missing bounds are resolved later by the derive
// rules. Dates keep calendar-day resolution, times of day are never used.
type CaseRecord struct {
	ID            string     `json:"id"`
	ExposureLeft  *time.Time `json:"exposure_left"`
	ExposureRight *time.Time `json:"exposure_right"`
	OnsetLeft     *time.Time `json:"onset_left"`
	OnsetRight    *time.Time `json:"onset_right"`
	FeverLeft     *time.Time `json:"fever_left"`
	FeverRight    *time.Time `json:"fever_right"`
	Presented     *time.Time `json:"presented"`
	Reported      *time.Time `json:"reported"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Age           int        `json:"age"`
	Sex           string     `json:"sex"`
	Reviewers     int        `json:"reviewers"`
}

// HasFeverOnset reports whether the record carries any fever date at all.
// Cases without one cannot enter the fever cohort.
func (r CaseRecord) HasFeverOnset() bool {
	return r.FeverLeft != nil || r.FeverRight != nil
}
