package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epireport/incubation-analysis/consts"
	"github.com/epireport/incubation-analysis/fit"
	"github.com/epireport/incubation-analysis/schema"
	"github.com/epireport/incubation-analysis/utils"
)

// syntheticLineList builds 24 hand-shaped records: a third exposed outside
// Wuhan, most with a fever onset pair, and the last four missing their
// exposure-left so the alternate-origin-date floor actually bites.
func syntheticLineList() []schema.CaseRecord {
	days := func(base time.Time, n int) *time.Time {
		v := base.AddDate(0, 0, n)
		return &v
	}

	var records []schema.CaseRecord
	for i := 0; i < 24; i++ {
		el := utils.MustDate("2020-01-01").AddDate(0, 0, i%5)

		r := schema.CaseRecord{
			ID:            fmt.Sprintf("c%03d", i+1),
			ExposureLeft:  days(el, 0),
			ExposureRight: days(el, 2),
			OnsetLeft:     days(el, 3+i%4),
			OnsetRight:    days(el, 5+i%4),
			Presented:     days(el, 6+i%4),
			Reported:      days(el, 8+i%4),
			Origin:        "Wuhan",
			Destination:   "Japan",
			Age:           30 + i,
			Sex:           "M",
			Reviewers:     2,
		}
		if i%3 == 0 {
			r.Origin = "Singapore"
		}
		if i%4 != 3 {
			r.FeverLeft = days(el, 4+i%4)
			r.FeverRight = days(el, 6+i%4)
		}
		if i >= 20 {
			r.ExposureLeft = nil
		}
		records = append(records, r)
	}
	return records
}

func runConfig() Config {
	return Config{
		Derive: schema.DerivePolicy{
			ReferenceEpoch:  utils.MustDate("2019-12-01"),
			MinExposureLeft: utils.MustDate("2019-12-20"),
		},
		Filter: schema.FilterPolicy{
			ZeroWidth:    schema.ZeroWidthDrop,
			MinReviewers: 2,
		},
		Origin: "Wuhan",
		Fit: fit.Config{
			Quantiles: []float64{0, 0.5, 0.95},
		},
		Bootstrap: fit.BootstrapConfig{
			Replicates: 30,
			Seed:       7,
			Workers:    2,
			Width:      95,
		},
	}
}

func TestRunAllCohorts(t *testing.T) {
	results, err := Run(syntheticLineList(), runConfig())
	require.NoError(t, err)
	require.Len(t, results, 4)

	var names []string
	for _, r := range results {
		names = append(names, r.Cohort)
	}
	assert.Equal(t, consts.CohortOrder, names)

	for _, r := range results {
		assert.Equal(t, "lognormal", r.Family)
		require.Len(t, r.Params, 2)
		assert.Equal(t, "mu", r.Params[0].Name)
		assert.Equal(t, "sigma", r.Params[1].Name)

		require.Len(t, r.Quantiles, 3)
		assert.Equal(t, "gmean", r.Quantiles[0].Label)
		assert.Equal(t, "50%", r.Quantiles[1].Label)
		assert.Equal(t, "95%", r.Quantiles[2].Label)

		assert.Equal(t, 30, r.Bootstrap.Replicates)
		assert.Equal(t, int64(7), r.Bootstrap.Seed)
		assert.Equal(t, 30, r.Bootstrap.Used+r.Bootstrap.Discarded)
		assert.Negative(t, r.LogLik)
	}

	assert.Equal(t, 24, results[0].N)
	assert.Equal(t, 18, results[1].N)
	assert.Equal(t, 8, results[2].N)
	assert.Equal(t, 24, results[3].N)

	// incubation around four to five days for this construction
	mu := results[0].Params[0].Value
	assert.Greater(t, mu, 0.8)
	assert.Less(t, mu, 2.2)

	// the moved exposure floor changes the four defaulted records
	assert.NotEqual(t, results[0].Params[0].Value, results[3].Params[0].Value)
}

func TestRunDeterministic(t *testing.T) {
	first, err := Run(syntheticLineList(), runConfig())
	require.NoError(t, err)

	second, err := Run(syntheticLineList(), runConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunFailsWhenCohortTooSmall(t *testing.T) {
	records := syntheticLineList()
	for i := range records {
		records[i].Reviewers = 1
	}

	_, err := Run(records, runConfig())
	require.Error(t, err)
	assert.ErrorIs(t, err, fit.ErrInsufficientData)
}
