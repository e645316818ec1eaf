package cohort

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/epireport/incubation-analysis/consts"
	"github.com/epireport/incubation-analysis/schema"
)

// Specs returns the standard cohort set for one analysis run: the base
// cohort, the fever re-derivation, the origin exclusion, and the
// alternate-origin-date sensitivity variant with the exposure floor moved
// one calendar year earlier.
func Specs(base schema.DerivePolicy, filter schema.FilterPolicy, originLabel string) []schema.CohortSpec {
	fever := base
	fever.UseFeverOnset = true

	alternate := base
	alternate.MinExposureLeft = base.MinExposureLeft.AddDate(-1, 0, 0)

	return []schema.CohortSpec{
		{Name: consts.CohortAll, Derive: base, Filter: filter},
		{Name: consts.CohortFever, Derive: fever, Filter: filter},
		{Name: consts.CohortNonOrigin, Derive: base, Filter: filter, ExcludeOrigin: originLabel},
		{Name: consts.CohortAlternateDate, Derive: alternate, Filter: filter},
	}
}

// inScope decides whether a record belongs to the cohort at all, before
// any quality gate. Out-of-scope records are not counted as drops.
func inScope(r schema.CaseRecord, spec schema.CohortSpec) bool {
	if spec.ExcludeOrigin != "" && strings.EqualFold(r.Origin, spec.ExcludeOrigin) {
		return false
	}
	if spec.Derive.UseFeverOnset && !r.HasFeverOnset() {
		return false
	}
	return true
}

// Build derives and filters every in-scope record into an immutable cohort
// snapshot. Records dropped for missing bounds and records dropped for
// violating the validity predicates are counted separately.
func Build(records []schema.CaseRecord, spec schema.CohortSpec) schema.Cohort {
	c := schema.Cohort{Name: spec.Name}

	for _, r := range records {
		if !inScope(r, spec) {
			continue
		}
		c.SourceCases++

		if err := checkRecord(r, spec.Filter); nil != err {
			c.DroppedInvalid++
			log.WithFields(log.Fields{"prefix": logPrefix, "cohort": spec.Name, "error": err}).Debug("record rejected")
			continue
		}

		iv, err := Derive(r, spec.Derive)
		if nil != err {
			if errors.Is(err, ErrIncomplete) {
				c.DroppedIncomplete++
			} else {
				c.DroppedInvalid++
			}
			log.WithFields(log.Fields{"prefix": logPrefix, "cohort": spec.Name, "error": err}).Debug("record rejected")
			continue
		}

		iv, err = checkInterval(iv, spec.Filter)
		if nil != err {
			c.DroppedInvalid++
			log.WithFields(log.Fields{"prefix": logPrefix, "cohort": spec.Name, "error": err}).Debug("record rejected")
			continue
		}
		c.Intervals = append(c.Intervals, iv)
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"cohort":     spec.Name,
		"source":     c.SourceCases,
		"kept":       c.Size(),
		"incomplete": c.DroppedIncomplete,
		"invalid":    c.DroppedInvalid,
	}).Info("cohort built")
	return c
}
