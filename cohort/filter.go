package cohort

import (
	"fmt"

	"github.com/epireport/incubation-analysis/schema"
)

// checkInterval applies the zero-width policy and the hard ordering
// predicates. It may widen bounds (nudge) and retype the interval; the
// returned interval is the one that enters the estimator.
func checkInterval(iv schema.DerivedInterval, fp schema.FilterPolicy) (schema.DerivedInterval, error) {
	if iv.ExposureWidth() < 0 {
		return iv, fmt.Errorf("case %s: exposure window negative: %w", iv.CaseID, ErrInvalidInterval)
	}
	if iv.OnsetWidth() < 0 {
		return iv, fmt.Errorf("case %s: onset window negative: %w", iv.CaseID, ErrInvalidInterval)
	}

	switch fp.ZeroWidth {
	case schema.ZeroWidthNudge:
		if iv.ExposureWidth() == 0 {
			iv.EL -= fp.Nudge
			iv.ER += fp.Nudge
		}
		if iv.OnsetWidth() == 0 {
			iv.SL -= fp.Nudge
			iv.SR += fp.Nudge
		}
	case schema.ZeroWidthKeep:
		// an exact bound on both windows leaves no probability mass for
		// any parameter value
		if iv.ExposureWidth() == 0 && iv.OnsetWidth() == 0 {
			return iv, fmt.Errorf("case %s: both windows zero width: %w", iv.CaseID, ErrInvalidInterval)
		}
	default: // schema.ZeroWidthDrop
		if iv.ExposureWidth() == 0 {
			return iv, fmt.Errorf("case %s: exposure window zero width: %w", iv.CaseID, ErrInvalidInterval)
		}
		if iv.OnsetWidth() == 0 {
			return iv, fmt.Errorf("case %s: onset window zero width: %w", iv.CaseID, ErrInvalidInterval)
		}
	}

	if iv.ER > iv.SR {
		return iv, fmt.Errorf("case %s: exposure ends after onset window: %w", iv.CaseID, ErrInvalidInterval)
	}
	if iv.SL < iv.EL {
		return iv, fmt.Errorf("case %s: onset starts before exposure window: %w", iv.CaseID, ErrInvalidInterval)
	}

	iv.Type = classify(iv)
	return iv, nil
}

// checkRecord is the record-level quality gate.
func checkRecord(r schema.CaseRecord, fp schema.FilterPolicy) error {
	if r.Reviewers < fp.MinReviewers {
		return fmt.Errorf("case %s: %d reviewers: %w", r.ID, r.Reviewers, ErrInvalidInterval)
	}
	return nil
}
