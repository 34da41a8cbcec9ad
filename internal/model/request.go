package model

// CalculationRequest is the full input state for one computation: the
// current holdings, cash set aside for investing, the income goal, the
// horizon, and the market/loan assumptions. Assumptions may be omitted, in
// which case the defaults apply; a supplied record is taken as-is.
type CalculationRequest struct {
	Properties       []Property   `json:"properties"`
	CashAllocated    float64      `json:"cash_allocated"`
	AnnualIncomeGoal float64      `json:"annual_income_goal"`
	TargetYears      int          `json:"target_years"`
	Assumptions      *Assumptions `json:"assumptions,omitempty"`
}

// ResolvedAssumptions returns the request's assumptions with policy defaults
// filled in, falling back to DefaultAssumptions when none were supplied.
func (r *CalculationRequest) ResolvedAssumptions() Assumptions {
	if r.Assumptions == nil {
		return DefaultAssumptions()
	}
	a := *r.Assumptions
	a.Normalize()
	return a
}

// SensitivityRequest sweeps one named assumption over a grid, re-running the
// full projection and optimizer at every point.
type SensitivityRequest struct {
	CalculationRequest
	Variable string  `json:"variable"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Step     float64 `json:"step"`
}
