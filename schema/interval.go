package schema

// CensorType tells the estimator which likelihood contribution a case makes.
type CensorType int

const (
	// DoublyCensored cases carry a proper exposure window and a proper
	// onset window.
	DoublyCensored CensorType = iota
	// OnsetPoint cases have an exact onset day (SL == SR) and a windowed
	// exposure.
	OnsetPoint
	// ExposurePoint cases have an exact exposure day (EL == ER) and a
	// windowed onset.
	ExposurePoint
)

func (t CensorType) String() string {
	switch t {
	case DoublyCensored:
		return "doubly-censored"
	case OnsetPoint:
		return "onset-point"
	case ExposurePoint:
		return "exposure-point"
	}
	return "unknown"
}

// DerivedInterval is the numeric form of one case after the derive rules
// ran: the four bounds in fractional days since the reference epoch, with
// EL <= ER <= SR and EL <= SL <= SR.
type DerivedInterval struct {
	CaseID string     `json:"case_id"`
	EL     float64    `json:"exposure_left"`
	ER     float64    `json:"exposure_right"`
	SL     float64    `json:"onset_left"`
	SR     float64    `json:"onset_right"`
	Type   CensorType `json:"type"`
}

// ExposureWidth is the size of the exposure window in days.
func (i DerivedInterval) ExposureWidth() float64 {
	return i.ER - i.EL
}

// OnsetWidth is the size of the onset window in days.
func (i DerivedInterval) OnsetWidth() float64 {
	return i.SR - i.SL
}
