package schema

import (
	"math"
	"strconv"
	"time"
)

const (
	// SourceThisAnalysis marks result rows produced by the current run.
	SourceThisAnalysis = "this analysis"
	// SourcePublished marks rows merged in from previously published
	// estimates for comparison.
	SourcePublished = "published"
)

// Estimate is a point value with its bootstrap percentile interval.
type Estimate struct {
	Value float64 `json:"value"`
	Lo    float64 `json:"ci_low"`
	Hi    float64 `json:"ci_high"`
}

// ParamEstimate is one fitted distribution parameter, named the way the
// family names it (mu/sigma for log-normal, shape/scale otherwise).
type ParamEstimate struct {
	Name string `json:"name"`
	Estimate
}

// QuantileEstimate is the estimate for one requested probability. P zero is
// the reserved request for the geometric mean rather than a true quantile.
type QuantileEstimate struct {
	P     float64 `json:"p"`
	Label string  `json:"label"`
	Estimate
}

// BootstrapMeta records how the confidence intervals were produced.
type BootstrapMeta struct {
	Replicates int     `json:"replicates"`
	Used       int     `json:"used"`
	Discarded  int     `json:"discarded"`
	Seed       int64   `json:"seed"`
	Width      float64 `json:"width"`
	// Unreliable is set when more replicates were discarded than the
	// configured tolerance allows. The intervals are still reported.
	Unreliable bool `json:"unreliable"`
}

// FitResult is everything the estimator and resampler produced for one
// cohort: the fitted parameters, the requested quantiles plus the mean, and
// the bootstrap bookkeeping.
type FitResult struct {
	Cohort    string             `json:"cohort"`
	Family    string             `json:"family"`
	N         int                `json:"n"`
	Params    []ParamEstimate    `json:"params"`
	Quantiles []QuantileEstimate `json:"quantiles"`
	Mean      Estimate           `json:"mean"`
	LogLik    float64            `json:"log_likelihood"`
	Bootstrap BootstrapMeta      `json:"bootstrap"`
}

// ResultRow is one line of the unified results table.
type ResultRow struct {
	Cohort string  `json:"cohort"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Lo     float64 `json:"ci_low"`
	Hi     float64 `json:"ci_high"`
	Source string  `json:"source"`
}

// ResultsTable is the merged output handed to reporting: every cohort's
// estimates plus any published comparators, in a fixed row order.
type ResultsTable struct {
	RunID       string      `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Rows        []ResultRow `json:"rows"`
}

// RunInfo describes one analysis run for the result store.
type RunInfo struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Source     string    `json:"source"`
	Family     string    `json:"family"`
	Seed       int64     `json:"seed"`
	Replicates int       `json:"replicates"`
}

// PublishedEstimate is a previously published figure the table is compared
// against.
type PublishedEstimate struct {
	Source string  `json:"source" yaml:"source"`
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Lo     float64 `json:"ci_low" yaml:"lo"`
	Hi     float64 `json:"ci_high" yaml:"hi"`
}

// QuantileLabel renders a probability as a table label, one decimal at
// most: 0.025 becomes "2.5%", 0.5 becomes "50%". Probability zero is the
// geometric-mean request and labels as "gmean".
func QuantileLabel(p float64) string {
	if p == 0 {
		return "gmean"
	}
	v := math.Round(p*1000) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
