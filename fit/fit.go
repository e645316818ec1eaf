package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/epireport/incubation-analysis/schema"
)

const logPrefix = "fit"

var (
	// ErrDidNotConverge means the optimizer stopped without a usable
	// maximum.
	ErrDidNotConverge = fmt.Errorf("fit did not converge")
	// ErrInsufficientData means the cohort is too small to fit at all.
	ErrInsufficientData = fmt.Errorf("too few cases to fit")
)

const (
	defaultMaxIterations = 1000
	defaultMinCases      = 2
)

// Config drives a single maximum-likelihood fit.
type Config struct {
	// Family defaults to LogNormal.
	Family Family
	// Quantiles are the requested probabilities, in report order.
	// Probability zero requests the geometric mean.
	Quantiles []float64
	// MaxIterations bounds the optimizer.
	MaxIterations int
	// MinCases is the smallest cohort worth fitting.
	MinCases int
}

func (c Config) family() Family {
	if c.Family == nil {
		return LogNormal{}
	}
	return c.Family
}

func (c Config) maxIterations() int {
	if c.MaxIterations <= 0 {
		return defaultMaxIterations
	}
	return c.MaxIterations
}

func (c Config) minCases() int {
	if c.MinCases < defaultMinCases {
		return defaultMinCases
	}
	return c.MinCases
}

// Point is the primary fit on one cohort: parameters and derived
// summaries, no intervals attached yet.
type Point struct {
	X          []float64
	Params     [2]float64
	ParamNames [2]string
	Quantiles  []float64
	Mean       float64
	LogLik     float64
}

// Fit maximizes the doubly-interval-censored log-likelihood over the
// family parameters with Nelder-Mead. The returned point estimates are
// what the report quotes; confidence intervals come from Bootstrap.
func Fit(c schema.Cohort, cfg Config) (Point, error) {
	fam := cfg.family()
	if c.Size() < cfg.minCases() {
		return Point{}, fmt.Errorf("cohort %s has %d cases: %w", c.Name, c.Size(), ErrInsufficientData)
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -logLikelihood(c.Intervals, fam, x)
		},
	}
	settings := &optimize.Settings{
		MajorIterations: cfg.maxIterations(),
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-8,
			Iterations: 50,
		},
	}

	result, err := optimize.Minimize(problem, fam.Init(midDurations(c.Intervals)), settings, &optimize.NelderMead{})
	if err == nil {
		err = result.Status.Err()
	}
	if nil != err {
		return Point{}, fmt.Errorf("cohort %s: %v: %w", c.Name, err, ErrDidNotConverge)
	}
	if math.IsInf(result.F, 0) || math.IsNaN(result.F) {
		return Point{}, fmt.Errorf("cohort %s: no finite likelihood: %w", c.Name, ErrDidNotConverge)
	}

	p := Point{
		X:          result.X,
		ParamNames: fam.ParamNames(),
		Quantiles:  make([]float64, len(cfg.Quantiles)),
		Mean:       fam.Mean(result.X),
		LogLik:     -result.F,
	}
	p.Params[0], p.Params[1] = fam.Natural(result.X)
	for i, q := range cfg.Quantiles {
		if q == 0 {
			p.Quantiles[i] = fam.GeoMean(result.X)
			continue
		}
		p.Quantiles[i] = fam.Quantile(q, result.X)
	}
	return p, nil
}
