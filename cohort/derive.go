package cohort

import (
	"fmt"
	"time"

	"github.com/epireport/incubation-analysis/schema"
	"github.com/epireport/incubation-analysis/utils"
)

const logPrefix = "cohort"

var (
	// ErrIncomplete means a required bound could not be resolved by the
	// substitution rules.
	ErrIncomplete = fmt.Errorf("required bound unresolved")
	// ErrInvalidInterval means the resolved bounds violate the ordering
	// constraints.
	ErrInvalidInterval = fmt.Errorf("interval violates ordering constraints")
)

// work holds the bounds while the substitution rules run. Rules only ever
// write fresh values, never pointers into the source record.
type work struct {
	exposureLeft  *time.Time
	exposureRight *time.Time
	onsetLeft     *time.Time
	onsetRight    *time.Time
	feverLeft     *time.Time
	feverRight    *time.Time
}

func newWork(r schema.CaseRecord) work {
	return work{
		exposureLeft:  cloneDate(r.ExposureLeft),
		exposureRight: cloneDate(r.ExposureRight),
		onsetLeft:     cloneDate(r.OnsetLeft),
		onsetRight:    cloneDate(r.OnsetRight),
		feverLeft:     cloneDate(r.FeverLeft),
		feverRight:    cloneDate(r.FeverRight),
	}
}

func cloneDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// rule is one substitution step. Rules run in table order and may read
// bounds earlier rules filled in.
type rule struct {
	name  string
	apply func(w *work, r schema.CaseRecord, p schema.DerivePolicy)
}

// deriveRules is the default-substitution policy table. The order is part
// of the contract: exposure-right depends on the resolved onset-right, the
// fever rule depends on the resolved onset-left.
func deriveRules() []rule {
	return []rule{
		{name: "exposure-left-floor", apply: exposureLeftFloor},
		{name: "onset-right-presentation", apply: onsetRightPresentation},
		{name: "exposure-right-from-onset", apply: exposureRightFromOnset},
		{name: "onset-left-from-exposure", apply: onsetLeftFromExposure},
		{name: "fever-left-from-onset", apply: feverLeftFromOnset},
	}
}

// exposureLeftFloor defaults a missing exposure-left to the policy floor
// and clamps earlier ones up to it. Exposure cannot predate the assumed
// earliest source event.
func exposureLeftFloor(w *work, _ schema.CaseRecord, p schema.DerivePolicy) {
	if w.exposureLeft == nil || w.exposureLeft.Before(p.MinExposureLeft) {
		v := p.MinExposureLeft
		w.exposureLeft = &v
	}
}

// onsetRightPresentation falls back to the day the case presented to a
// clinic when no symptom end bound was reported. Symptoms had begun by
// presentation.
func onsetRightPresentation(w *work, r schema.CaseRecord, _ schema.DerivePolicy) {
	if w.onsetRight == nil && r.Presented != nil {
		w.onsetRight = cloneDate(r.Presented)
	}
}

// exposureRightFromOnset assumes exposure ended no later than symptom
// onset was bounded.
func exposureRightFromOnset(w *work, _ schema.CaseRecord, _ schema.DerivePolicy) {
	if w.exposureRight == nil && w.onsetRight != nil {
		w.exposureRight = cloneDate(w.onsetRight)
	}
}

// onsetLeftFromExposure assumes symptoms cannot have begun before the
// exposure window opened.
func onsetLeftFromExposure(w *work, _ schema.CaseRecord, _ schema.DerivePolicy) {
	if w.onsetLeft == nil && w.exposureLeft != nil {
		w.onsetLeft = cloneDate(w.exposureLeft)
	}
}

// feverLeftFromOnset fills a missing fever-left from the resolved
// onset-left when a fever-right exists. Only the fever cohort derivation
// uses the fever pair, so the rule is a no-op elsewhere.
func feverLeftFromOnset(w *work, _ schema.CaseRecord, p schema.DerivePolicy) {
	if !p.UseFeverOnset {
		return
	}
	if w.feverLeft == nil && w.feverRight != nil && w.onsetLeft != nil {
		w.feverLeft = cloneDate(w.onsetLeft)
	}
}

// Derive resolves one record into numeric bounds under the given policy.
// There is no defaulting beyond the rule table: any record that still
// misses a required bound afterwards is Incomplete.
func Derive(r schema.CaseRecord, p schema.DerivePolicy) (schema.DerivedInterval, error) {
	w := newWork(r)
	for _, step := range deriveRules() {
		step.apply(&w, r, p)
	}

	onsetLeft, onsetRight := w.onsetLeft, w.onsetRight
	if p.UseFeverOnset {
		onsetLeft, onsetRight = w.feverLeft, w.feverRight
	}
	if w.exposureLeft == nil || w.exposureRight == nil || onsetLeft == nil || onsetRight == nil {
		return schema.DerivedInterval{}, fmt.Errorf("case %s: %w", r.ID, ErrIncomplete)
	}

	iv := schema.DerivedInterval{
		CaseID: r.ID,
		EL:     utils.DaysSince(p.ReferenceEpoch, *w.exposureLeft),
		ER:     utils.DaysSince(p.ReferenceEpoch, *w.exposureRight),
		SL:     utils.DaysSince(p.ReferenceEpoch, *onsetLeft),
		SR:     utils.DaysSince(p.ReferenceEpoch, *onsetRight),
	}
	iv.Type = classify(iv)
	return iv, nil
}

// classify picks the likelihood term for the final bounds. An exact onset
// wins over an exact exposure when both windows collapsed.
func classify(iv schema.DerivedInterval) schema.CensorType {
	switch {
	case iv.SL == iv.SR:
		return schema.OnsetPoint
	case iv.EL == iv.ER:
		return schema.ExposurePoint
	}
	return schema.DoublyCensored
}
