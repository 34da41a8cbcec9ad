package calc

import (
	"math"

	"roadmap-engine/internal/model"
)

// GapAnalysis quantifies the distance between the achieved income and the
// goal, and the four independent options for closing it. Returns nil when
// there is nothing to analyze (no scenario, or the goal is already met).
//
// The additional-years option is an approximation from the terminal
// portfolio's equity-growth rate, not a re-run of the simulation.
func GapAnalysis(projection []model.YearSnapshot, scenario *model.SaleScenario, a model.Assumptions, annualIncomeGoal float64, targetYears int) (*model.GapAnalysis, error) {
	if scenario == nil || scenario.GoalAchieved {
		return nil, nil
	}

	shortfall := annualIncomeGoal - scenario.AfterTaxIncome

	// Each additional debt-free property at the target price nets
	// yield-after-vacancy less holding costs, taxed at the margin.
	netYieldAfterCosts := a.RentalYield*(1-a.VacancyRate) - a.HoldingCostsRate
	incomePerProperty := a.TargetPrice * netYieldAfterCosts * (1 - a.TaxBracket)
	if incomePerProperty <= 0 {
		return nil, &model.InvalidAssumptionError{
			Field:  "holding_costs_rate",
			Reason: "holding costs and vacancy consume the entire rental yield; income per property is not positive",
		}
	}
	propertiesNeeded := int(math.Ceil(shortfall / incomePerProperty))

	depositPerProperty := DepositRequired(a.TargetPrice, a.MaxLVR, a.StampDutyRate, a.PurchaseCostsRate, a.BuyersAgentFee)
	additionalCash := float64(propertiesNeeded) * depositPerProperty

	var additionalYears int
	if len(projection) > 0 {
		finalValue := projection[len(projection)-1].Totals.TotalValue
		equityGrowth := finalValue * a.AppreciationRate
		if equityGrowth > 0 && depositPerProperty > 0 {
			yearsPerProperty := depositPerProperty / equityGrowth
			additionalYears = int(math.Ceil(float64(propertiesNeeded) * yearsPerProperty))
		}
	}

	var portfolioValue float64
	for _, p := range scenario.KeptProperties {
		portfolioValue += p.CurrentValue
	}
	percentOfGoal := 0
	if annualIncomeGoal > 0 {
		percentOfGoal = int(math.Round(math.Max(0, scenario.AfterTaxIncome) / annualIncomeGoal * 100))
	}

	return &model.GapAnalysis{
		IncomeShortfall:      shortfall,
		MonthlyShortfall:     shortfall / 12,
		AdditionalProperties: propertiesNeeded,
		AdditionalCash:       additionalCash,
		AdditionalYears:      additionalYears,
		NewTotalYears:        targetYears + additionalYears,
		AchievableGoal:       scenario.AfterTaxIncome,
		ActualOutcome: model.GapOutcome{
			PropertiesKept: len(scenario.KeptProperties),
			DebtFreeCount:  scenario.DebtFreeCount,
			AnnualIncome:   scenario.AfterTaxIncome,
			MonthlyIncome:  scenario.MonthlyIncome,
			PercentOfGoal:  percentOfGoal,
			PortfolioValue: portfolioValue,
		},
	}, nil
}
