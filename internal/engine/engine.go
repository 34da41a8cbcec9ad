// Package engine orchestrates one full roadmap computation: projection,
// strategic sale, goal progress, gap analysis, levers, and insights, wrapped
// in a metadata envelope. Every call is a pure mapping from the request to a
// fresh response; repeated calls with identical inputs produce identical
// results, and concurrent calls share nothing.
package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/insights"
	"roadmap-engine/internal/levers"
	"roadmap-engine/internal/model"
)

func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	a := req.ResolvedAssumptions()
	result := model.CalculationResult{Messages: []model.CalculationMessage{}}
	outcome := model.OutcomeSuccess

	addMessage := func(level, code, field, text string) {
		result.Messages = append(result.Messages, model.CalculationMessage{
			ID: len(result.Messages), Level: level, Code: code, Field: field, Message: text,
		})
		if level == model.LevelCritical {
			outcome = model.OutcomeFailure
		}
	}

	// Benchmark advisories keep their own level but never block the run, so
	// they bypass addMessage and cannot flip the outcome.
	for _, w := range model.ValidateAssumptions(a) {
		result.Messages = append(result.Messages, model.CalculationMessage{
			ID: len(result.Messages), Level: w.Level, Code: w.Code, Field: w.Field, Message: w.Message,
		})
	}

	if err := a.CheckConfig(); err != nil {
		var bad *model.InvalidAssumptionError
		if errors.As(err, &bad) {
			addMessage(model.LevelCritical, "INVALID_ASSUMPTION", bad.Field, bad.Reason)
		} else {
			addMessage(model.LevelCritical, "INVALID_ASSUMPTION", "", err.Error())
		}
		return respond(start, outcome, result)
	}

	monthlyGoal := req.AnnualIncomeGoal / 12

	// Current-state portfolio position, before any projection.
	result.PortfolioTotals = currentTotals(req.Properties)
	if result.PortfolioTotals.TotalValue > 0 {
		result.OverallLVR = result.PortfolioTotals.TotalDebt / result.PortfolioTotals.TotalValue
	}

	projection, err := calc.GenerateProjection(req.Properties, req.CashAllocated, a, req.TargetYears)
	if err != nil {
		var bad *model.InvalidAssumptionError
		if errors.As(err, &bad) {
			addMessage(model.LevelCritical, "INVALID_ASSUMPTION", bad.Field, bad.Reason)
		} else {
			addMessage(model.LevelCritical, "PROJECTION_FAILED", "", err.Error())
		}
		return respond(start, outcome, result)
	}
	result.Projection = projection

	scenario := calc.StrategicSaleScenario(projection, monthlyGoal, a, req.TargetYears)
	result.SaleScenario = scenario
	result.GoalProgress = goalProgress(req.AnnualIncomeGoal, scenario, a)

	gap, err := calc.GapAnalysis(projection, scenario, a, req.AnnualIncomeGoal, req.TargetYears)
	if err != nil {
		var bad *model.InvalidAssumptionError
		if errors.As(err, &bad) {
			addMessage(model.LevelCritical, "INVALID_ASSUMPTION", bad.Field, bad.Reason)
		}
	}
	result.GapAnalysis = gap

	la, err := levers.Analyze(levers.Inputs{
		Properties:    req.Properties,
		CashAllocated: req.CashAllocated,
		Assumptions:   a,
		TargetYears:   req.TargetYears,
	}, req.AnnualIncomeGoal)
	if err != nil {
		addMessage(model.LevelWarning, "LEVERS_UNAVAILABLE", "", err.Error())
	}
	result.LeversAnalysis = la

	result.Insights = insights.Generate(projection, scenario, a, req.CashAllocated, req.AnnualIncomeGoal)

	return respond(start, outcome, result)
}

func respond(start time.Time, outcome string, result model.CalculationResult) *model.CalculationResponse {
	elapsed := time.Since(start)
	now := time.Now().UTC()
	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// currentTotals aggregates the caller-supplied holdings as they stand today.
func currentTotals(properties []model.Property) model.PortfolioTotals {
	t := model.PortfolioTotals{PropertyCount: len(properties)}
	for _, p := range properties {
		t.TotalValue += p.CurrentValue
		t.TotalEquity += calc.Equity(p.CurrentValue, p.LoanAmount)
		t.TotalDebt += p.LoanAmount
		t.TotalRent += p.AnnualRent
	}
	return t
}

func goalProgress(annualGoal float64, scenario *model.SaleScenario, a model.Assumptions) *model.GoalProgress {
	if scenario == nil {
		return nil
	}
	monthlyGoal := annualGoal / 12

	gp := &model.GoalProgress{
		TargetAnnualIncome:     annualGoal,
		TargetMonthlyIncome:    monthlyGoal,
		ProjectedAnnualIncome:  scenario.MonthlyIncome * 12,
		ProjectedMonthlyIncome: scenario.MonthlyIncome,
		GoalAchieved:           scenario.GoalAchieved,
		ShortfallMonthly:       scenario.Shortfall,
		ShortfallAnnual:        scenario.Shortfall * 12,
		SurplusMonthly:         scenario.Surplus,
		SurplusAnnual:          scenario.Surplus * 12,
		PropertiesNeeded:       calc.PropertiesNeededForGoal(annualGoal, a.TargetPrice, a.RentalYield, a.TaxBracket),
		PropertiesProjected:    scenario.DebtFreeCount,
	}
	if monthlyGoal > 0 {
		percent := scenario.MonthlyIncome / monthlyGoal * 100
		if percent > 100 {
			percent = 100
		}
		gp.PercentAchieved = percent
	}
	return gp
}
