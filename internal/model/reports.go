package model

// GoalProgress compares projected income against the stated goal.
type GoalProgress struct {
	TargetAnnualIncome     float64 `json:"target_annual_income"`
	TargetMonthlyIncome    float64 `json:"target_monthly_income"`
	ProjectedAnnualIncome  float64 `json:"projected_annual_income"`
	ProjectedMonthlyIncome float64 `json:"projected_monthly_income"`
	PercentAchieved        float64 `json:"percent_achieved"`
	GoalAchieved           bool    `json:"goal_achieved"`
	ShortfallMonthly       float64 `json:"shortfall_monthly"`
	ShortfallAnnual        float64 `json:"shortfall_annual"`
	SurplusMonthly         float64 `json:"surplus_monthly"`
	SurplusAnnual          float64 `json:"surplus_annual"`
	PropertiesNeeded       int     `json:"properties_needed"`
	PropertiesProjected    int     `json:"properties_projected"`
}

// GapOutcome is what the current strategy actually delivers.
type GapOutcome struct {
	PropertiesKept int     `json:"properties_kept"`
	DebtFreeCount  int     `json:"debt_free_count"`
	AnnualIncome   float64 `json:"annual_income"`
	MonthlyIncome  float64 `json:"monthly_income"`
	PercentOfGoal  int     `json:"percent_of_goal"`
	PortfolioValue float64 `json:"portfolio_value"`
}

// GapAnalysis quantifies the shortfall against the income goal and the four
// independent options for closing it. Absent (nil) when the goal is met.
type GapAnalysis struct {
	IncomeShortfall  float64 `json:"income_shortfall"` // annual
	MonthlyShortfall float64 `json:"monthly_shortfall"`

	// Option 1: buy more debt-free properties.
	AdditionalProperties int `json:"additional_properties"`
	// Option 2: start with more cash.
	AdditionalCash float64 `json:"additional_cash"`
	// Option 3: extend the timeline. An approximation from the terminal
	// equity-growth rate, not a re-run of the simulation.
	AdditionalYears int `json:"additional_years"`
	NewTotalYears   int `json:"new_total_years"`
	// Option 4: lower the goal to what is achievable.
	AchievableGoal float64 `json:"achievable_goal"`

	ActualOutcome GapOutcome `json:"actual_outcome"`
}

// LeverImpact is the delta a single perturbation produces against baseline.
type LeverImpact struct {
	PropertiesAcquired int     `json:"properties_acquired"`
	DebtFreeProperties int     `json:"debt_free_properties"`
	AnnualIncome       float64 `json:"annual_income"`
}

// LeverResult is one named perturbation and its measured effect.
type LeverResult struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Change       string      `json:"change"`
	Controllable bool        `json:"controllable"`
	Impact       LeverImpact `json:"impact"`
}

// LeversAnalysis ranks the fixed perturbation set by absolute income impact.
type LeversAnalysis struct {
	BaseResult   LeverImpact   `json:"base_result"`
	Levers       []LeverResult `json:"levers"`
	Controllable []LeverResult `json:"controllable_levers"`
	Market       []LeverResult `json:"market_levers"`

	BiggestLever     string `json:"biggest_lever"`
	BestControllable string `json:"best_controllable"`
}

// SensitivityPoint is one grid point of a single-variable sweep. Each point
// is a full projection and optimizer re-run.
type SensitivityPoint struct {
	Value          float64 `json:"value"`
	MonthlyIncome  float64 `json:"monthly_income"`
	GoalAchieved   bool    `json:"goal_achieved"`
	PropertiesKept int     `json:"properties_kept"`
}
