package fit

import (
	"math"

	"github.com/epireport/incubation-analysis/schema"
)

// logLikelihood sums the censored contribution of every case.
//
// A doubly-censored case integrates the CDF over the joint uncertainty of
// exposure time and onset time, assuming a uniform exposure time within
// its window. Writing G for CDFIntegral, the contribution is
//
//	G(SR-EL) - G(SL-EL) - G(SR-ER) + G(SL-ER)
//
// An exact onset (SL == SR) takes the derivative of that expression with
// respect to the onset point and an exact exposure (EL == ER) reduces to
// plain interval censoring of the duration. Constant factors such as the
// exposure window width do not depend on the parameters and are left out.
//
// The function returns -Inf whenever a contribution is not a positive
// finite mass, which steers the optimizer back to viable parameters.
func logLikelihood(intervals []schema.DerivedInterval, fam Family, x []float64) float64 {
	ll := 0.0
	for _, iv := range intervals {
		var contrib float64
		switch iv.Type {
		case schema.OnsetPoint:
			contrib = fam.CDF(iv.SL-iv.EL, x) - fam.CDF(iv.SL-iv.ER, x)
		case schema.ExposurePoint:
			contrib = fam.CDF(iv.SR-iv.EL, x) - fam.CDF(iv.SL-iv.EL, x)
		default:
			contrib = fam.CDFIntegral(iv.SR-iv.EL, x) - fam.CDFIntegral(iv.SL-iv.EL, x) -
				fam.CDFIntegral(iv.SR-iv.ER, x) + fam.CDFIntegral(iv.SL-iv.ER, x)
		}
		if math.IsNaN(contrib) || contrib <= 0 {
			return math.Inf(-1)
		}
		ll += math.Log(contrib)
	}
	return ll
}

// midDurations turns intervals into rough point durations for picking
// optimizer start values: midpoint of the onset window minus midpoint of
// the exposure window.
func midDurations(intervals []schema.DerivedInterval) []float64 {
	durations := make([]float64, len(intervals))
	for i, iv := range intervals {
		durations[i] = (iv.SL+iv.SR)/2 - (iv.EL+iv.ER)/2
	}
	return durations
}
