package fit

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const eulerGamma = 0.5772156649015329

// Weibull parameterizes durations by shape k and scale lambda. The
// optimizer vector is [log(k), log(lambda)].
type Weibull struct{}

func (Weibull) Name() string { return "weibull" }

func (Weibull) ParamNames() [2]string { return [2]string{"shape", "scale"} }

func (Weibull) Natural(x []float64) (float64, float64) {
	return math.Exp(x[0]), math.Exp(x[1])
}

func (Weibull) FromNatural(shape, lambda float64) []float64 {
	return []float64{math.Log(shape), math.Log(lambda)}
}

// Init matches the first two moments of log durations: log X has standard
// deviation pi/(k*sqrt(6)) and mean log(lambda) - eulerGamma/k.
func (f Weibull) Init(durations []float64) []float64 {
	logs := make([]float64, len(durations))
	for i, d := range durations {
		logs[i] = math.Log(math.Max(d, 0.5))
	}
	sd := stat.StdDev(logs, nil)
	if math.IsNaN(sd) || sd < 0.1 {
		sd = 0.1
	}
	shape := math.Pi / (sd * math.Sqrt(6))
	lambda := math.Exp(stat.Mean(logs, nil) + eulerGamma/shape)
	return []float64{math.Log(shape), math.Log(lambda)}
}

func (f Weibull) CDF(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	shape, lambda := f.Natural(x)
	return distuv.Weibull{K: shape, Lambda: lambda}.CDF(t)
}

// CDFIntegral is t*F(t) minus the partial mean, expressed through the
// regularized lower incomplete gamma function:
//
//	int_0^t u f(u) du = lambda * Gamma(1+1/k) * P(1+1/k, (t/lambda)^k)
func (f Weibull) CDFIntegral(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	shape, lambda := f.Natural(x)
	cdf := distuv.Weibull{K: shape, Lambda: lambda}.CDF(t)
	a := 1 + 1/shape
	partial := lambda * math.Gamma(a) * mathext.GammaIncReg(a, math.Pow(t/lambda, shape))
	return t*cdf - partial
}

func (f Weibull) Quantile(p float64, x []float64) float64 {
	shape, lambda := f.Natural(x)
	return distuv.Weibull{K: shape, Lambda: lambda}.Quantile(p)
}

func (f Weibull) Mean(x []float64) float64 {
	shape, lambda := f.Natural(x)
	return lambda * math.Gamma(1+1/shape)
}

func (f Weibull) GeoMean(x []float64) float64 {
	shape, lambda := f.Natural(x)
	return lambda * math.Exp(-eulerGamma/shape)
}
