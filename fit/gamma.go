package fit

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gamma parameterizes durations by shape k and scale theta. The optimizer
// vector is [log(k), log(theta)].
type Gamma struct{}

func (Gamma) Name() string { return "gamma" }

func (Gamma) ParamNames() [2]string { return [2]string{"shape", "scale"} }

func (Gamma) Natural(x []float64) (float64, float64) {
	return math.Exp(x[0]), math.Exp(x[1])
}

func (Gamma) FromNatural(shape, scale float64) []float64 {
	return []float64{math.Log(shape), math.Log(scale)}
}

func (f Gamma) Init(durations []float64) []float64 {
	floored := make([]float64, len(durations))
	for i, d := range durations {
		floored[i] = math.Max(d, 0.5)
	}
	m := stat.Mean(floored, nil)
	v := stat.Variance(floored, nil)
	if math.IsNaN(v) || v < 0.25 {
		v = 0.25
	}
	shape := m * m / v
	scale := v / m
	return []float64{math.Log(shape), math.Log(scale)}
}

func (f Gamma) CDF(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	shape, scale := f.Natural(x)
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale}.CDF(t)
}

// CDFIntegral is t*F(t) minus the partial mean int_0^t u f(u) du, which for
// a gamma is shape*scale times the CDF of a gamma with shape+1.
func (f Gamma) CDFIntegral(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	shape, scale := f.Natural(x)
	cdf := distuv.Gamma{Alpha: shape, Beta: 1 / scale}.CDF(t)
	partial := shape * scale * distuv.Gamma{Alpha: shape + 1, Beta: 1 / scale}.CDF(t)
	return t*cdf - partial
}

func (f Gamma) Quantile(p float64, x []float64) float64 {
	shape, scale := f.Natural(x)
	return distuv.Gamma{Alpha: shape, Beta: 1 / scale}.Quantile(p)
}

func (f Gamma) Mean(x []float64) float64 {
	shape, scale := f.Natural(x)
	return shape * scale
}

func (f Gamma) GeoMean(x []float64) float64 {
	shape, scale := f.Natural(x)
	return math.Exp(mathext.Digamma(shape)) * scale
}
