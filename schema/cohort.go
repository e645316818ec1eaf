package schema

// Cohort is an immutable snapshot of the intervals that survived derivation
// and filtering for one named analysis group. Building a cohort never
// mutates the source records, so several cohorts can be derived from the
// same line list with different policies.
type Cohort struct {
	Name              string            `json:"name"`
	Intervals         []DerivedInterval `json:"intervals"`
	SourceCases       int               `json:"source_cases"`
	DroppedIncomplete int               `json:"dropped_incomplete"`
	DroppedInvalid    int               `json:"dropped_invalid"`
}

// Size is the number of usable cases in the cohort.
func (c Cohort) Size() int {
	return len(c.Intervals)
}

// CountByType tallies the intervals per censoring type.
func (c Cohort) CountByType() map[CensorType]int {
	counts := map[CensorType]int{}
	for _, iv := range c.Intervals {
		counts[iv.Type]++
	}
	return counts
}
