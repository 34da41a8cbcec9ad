package model

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages []CalculationMessage `json:"messages"`

	PortfolioTotals PortfolioTotals `json:"portfolio_totals"`
	OverallLVR      float64         `json:"overall_lvr"`

	Projection     []YearSnapshot  `json:"projection"`
	SaleScenario   *SaleScenario   `json:"sale_scenario"`
	GoalProgress   *GoalProgress   `json:"goal_progress"`
	GapAnalysis    *GapAnalysis    `json:"gap_analysis"`
	LeversAnalysis *LeversAnalysis `json:"levers_analysis"`
	Insights       []Insight       `json:"insights"`
}

// Insight is one actionable observation derived from a computed scenario.
type Insight struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
