package fit

import (
	"github.com/epireport/incubation-analysis/schema"
)

// Run fits one cohort, bootstraps its confidence intervals and assembles
// the report form. The quoted values always come from the fit on the
// original cohort, never from the bootstrap draws.
func Run(c schema.Cohort, cfg Config, bcfg BootstrapConfig) (schema.FitResult, error) {
	point, err := Fit(c, cfg)
	if nil != err {
		return schema.FitResult{}, err
	}
	dist, err := Bootstrap(c, cfg, bcfg)
	if nil != err {
		return schema.FitResult{}, err
	}

	width := bcfg.width()
	result := schema.FitResult{
		Cohort: c.Name,
		Family: cfg.family().Name(),
		N:      c.Size(),
		Mean:   estimate(point.Mean, dist.Mean, width),
		LogLik: point.LogLik,
		Bootstrap: schema.BootstrapMeta{
			Replicates: dist.Requested,
			Used:       dist.Used(),
			Discarded:  dist.Discarded,
			Seed:       bcfg.Seed,
			Width:      width,
			Unreliable: dist.Unreliable(bcfg.maxDiscardFrac()),
		},
	}
	for i := 0; i < 2; i++ {
		result.Params = append(result.Params, schema.ParamEstimate{
			Name:     point.ParamNames[i],
			Estimate: estimate(point.Params[i], dist.Params[i], width),
		})
	}
	for i, p := range cfg.Quantiles {
		result.Quantiles = append(result.Quantiles, schema.QuantileEstimate{
			P:        p,
			Label:    schema.QuantileLabel(p),
			Estimate: estimate(point.Quantiles[i], dist.Quantiles[i], width),
		})
	}
	return result, nil
}

func estimate(value float64, draws []float64, width float64) schema.Estimate {
	lo, hi := Interval(draws, width)
	return schema.Estimate{Value: value, Lo: lo, Hi: hi}
}
