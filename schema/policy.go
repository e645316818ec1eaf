package schema

import (
	"time"
)

// ZeroWidthRule decides what happens to a window whose two bounds landed on
// the same day after derivation.
type ZeroWidthRule string

const (
	// ZeroWidthDrop rejects the case.
	ZeroWidthDrop ZeroWidthRule = "drop"
	// ZeroWidthNudge widens the window symmetrically by the configured
	// nudge before fitting.
	ZeroWidthNudge ZeroWidthRule = "nudge"
	// ZeroWidthKeep keeps the case and lets the estimator treat the exact
	// bound as a point observation.
	ZeroWidthKeep ZeroWidthRule = "keep"
)

// DerivePolicy parameterizes the default-substitution rules that fill
// missing bounds before a record becomes a numeric interval.
type DerivePolicy struct {
	// ReferenceEpoch is day zero for the fractional-day scale.
	ReferenceEpoch time.Time `json:"reference_epoch"`
	// MinExposureLeft substitutes a missing exposure-left bound and also
	// clamps earlier reported ones. Usually the earliest plausible date of
	// the outbreak origin.
	MinExposureLeft time.Time `json:"min_exposure_left"`
	// UseFeverOnset swaps the fever dates in for the symptom dates, for
	// the fever cohort.
	UseFeverOnset bool `json:"use_fever_onset"`
}

// FilterPolicy parameterizes the validity predicates applied to derived
// intervals.
type FilterPolicy struct {
	ZeroWidth    ZeroWidthRule `json:"zero_width"`
	Nudge        float64       `json:"nudge"`
	MinReviewers int           `json:"min_reviewers"`
}

// CohortSpec names one analysis group and the policies that produce it.
// ExcludeOrigin, when set, scopes the cohort to cases whose origin does not
// match it.
type CohortSpec struct {
	Name          string       `json:"name"`
	Derive        DerivePolicy `json:"derive"`
	Filter        FilterPolicy `json:"filter"`
	ExcludeOrigin string       `json:"exclude_origin"`
}
