package consts

// DefaultQuantiles are the probabilities reported when the configuration
// does not override them. The grid matches the published incubation-period
// tables so runs stay comparable.
var DefaultQuantiles = []float64{0.025, 0.05, 0.25, 0.5, 0.75, 0.95, 0.975, 0.99}

// Cohort names. Every run fits each of these unless the line list cannot
// populate one.
const (
	CohortAll           = "all"
	CohortFever         = "fever-only"
	CohortNonOrigin     = "non-origin-country"
	CohortAlternateDate = "alternate-origin-date"
)

// CohortOrder fixes the row order of the results table.
var CohortOrder = []string{CohortAll, CohortFever, CohortNonOrigin, CohortAlternateDate}
