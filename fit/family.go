package fit

import (
	"fmt"
)

// Family is a two-parameter duration distribution seen through an
// unconstrained optimizer vector x, so the optimizer never has to respect
// positivity constraints itself.
type Family interface {
	Name() string
	// ParamNames are the natural parameter names, in Natural order.
	ParamNames() [2]string
	// Natural maps the optimizer vector to the natural parameters.
	Natural(x []float64) (float64, float64)
	// FromNatural is the inverse of Natural, for rebuilding a vector from
	// reported parameters.
	FromNatural(a, b float64) []float64
	// Init proposes a starting vector from rough point durations.
	Init(durations []float64) []float64
	// CDF is F(t); zero for t <= 0.
	CDF(t float64, x []float64) float64
	// CDFIntegral is the integral of F from 0 to t; zero for t <= 0.
	CDFIntegral(t float64, x []float64) float64
	// Quantile inverts the CDF at probability p.
	Quantile(p float64, x []float64) float64
	// Mean is the arithmetic mean of the distribution.
	Mean(x []float64) float64
	// GeoMean is the geometric mean, exp of the mean of log durations.
	GeoMean(x []float64) float64
}

// FamilyByName resolves a configured family name.
func FamilyByName(name string) (Family, error) {
	switch name {
	case "", "lognormal", "log-normal":
		return LogNormal{}, nil
	case "gamma":
		return Gamma{}, nil
	case "weibull":
		return Weibull{}, nil
	}
	return nil, fmt.Errorf("unknown distribution family %q", name)
}
