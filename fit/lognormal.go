package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogNormal is the default incubation-period family. The optimizer vector
// is [mu, log(sigma)] on the log-duration scale.
type LogNormal struct{}

func (LogNormal) Name() string { return "lognormal" }

func (LogNormal) ParamNames() [2]string { return [2]string{"mu", "sigma"} }

func (LogNormal) Natural(x []float64) (float64, float64) {
	return x[0], math.Exp(x[1])
}

func (LogNormal) FromNatural(mu, sigma float64) []float64 {
	return []float64{mu, math.Log(sigma)}
}

func (f LogNormal) Init(durations []float64) []float64 {
	logs := make([]float64, len(durations))
	for i, d := range durations {
		logs[i] = math.Log(math.Max(d, 0.5))
	}
	mu := stat.Mean(logs, nil)
	sigma := stat.StdDev(logs, nil)
	if math.IsNaN(sigma) || sigma < 0.1 {
		sigma = 0.1
	}
	return []float64{mu, math.Log(sigma)}
}

func (f LogNormal) CDF(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	mu, sigma := f.Natural(x)
	return distuv.LogNormal{Mu: mu, Sigma: sigma}.CDF(t)
}

// CDFIntegral uses the closed form
//
//	int_0^t F(u) du = t*F(t) - exp(mu + sigma^2/2) * Phi((log t - mu)/sigma - sigma)
//
// which follows from integrating the log-normal CDF by parts.
func (f LogNormal) CDFIntegral(t float64, x []float64) float64 {
	if t <= 0 {
		return 0
	}
	mu, sigma := f.Natural(x)
	cdf := distuv.LogNormal{Mu: mu, Sigma: sigma}.CDF(t)
	z := (math.Log(t)-mu)/sigma - sigma
	return t*cdf - math.Exp(mu+sigma*sigma/2)*distuv.UnitNormal.CDF(z)
}

func (f LogNormal) Quantile(p float64, x []float64) float64 {
	mu, sigma := f.Natural(x)
	return distuv.LogNormal{Mu: mu, Sigma: sigma}.Quantile(p)
}

func (f LogNormal) Mean(x []float64) float64 {
	mu, sigma := f.Natural(x)
	return math.Exp(mu + sigma*sigma/2)
}

func (f LogNormal) GeoMean(x []float64) float64 {
	mu, _ := f.Natural(x)
	return math.Exp(mu)
}
