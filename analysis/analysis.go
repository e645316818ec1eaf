package analysis

import (
	log "github.com/sirupsen/logrus"

	"github.com/epireport/incubation-analysis/cohort"
	"github.com/epireport/incubation-analysis/fit"
	"github.com/epireport/incubation-analysis/schema"
)

const logPrefix = "analysis"

// Config collects every knob of one analysis run.
type Config struct {
	// Derive resolves missing interval bounds on the base cohorts.
	Derive schema.DerivePolicy
	// Filter gates derived intervals before fitting.
	Filter schema.FilterPolicy
	// Origin is the outbreak origin label. The non-origin cohort excludes
	// cases exposed there.
	Origin string
	// Fit drives the maximum-likelihood estimation per cohort.
	Fit fit.Config
	// Bootstrap drives the confidence intervals per cohort.
	Bootstrap fit.BootstrapConfig
}

// Run derives, filters, fits and bootstraps every standard cohort. Any
// cohort failing to produce an estimate fails the whole run, so a report is
// only ever produced complete.
func Run(records []schema.CaseRecord, cfg Config) ([]schema.FitResult, error) {
	specs := cohort.Specs(cfg.Derive, cfg.Filter, cfg.Origin)

	results := make([]schema.FitResult, 0, len(specs))
	for _, spec := range specs {
		c := cohort.Build(records, spec)

		r, err := fit.Run(c, cfg.Fit, cfg.Bootstrap)
		if nil != err {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"cohort": spec.Name,
				"error":  err,
			}).Error("cohort estimation failed")
			return nil, err
		}

		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"cohort": spec.Name,
			"n":      r.N,
			"family": r.Family,
		}).Info("cohort fitted")
		results = append(results, r)
	}
	return results, nil
}
