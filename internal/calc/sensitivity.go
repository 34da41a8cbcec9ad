package calc

import (
	"fmt"

	"roadmap-engine/internal/model"
)

// SweepRange is an inclusive grid over one assumption.
type SweepRange struct {
	Min  float64
	Max  float64
	Step float64
}

// assumptionSetters maps sweepable variable names to field setters.
var assumptionSetters = map[string]func(*model.Assumptions, float64){
	"appreciation_rate":  func(a *model.Assumptions, v float64) { a.AppreciationRate = v },
	"rent_growth_rate":   func(a *model.Assumptions, v float64) { a.RentGrowthRate = v },
	"rental_yield":       func(a *model.Assumptions, v float64) { a.RentalYield = v },
	"interest_rate":      func(a *model.Assumptions, v float64) { a.InterestRate = v },
	"max_lvr":            func(a *model.Assumptions, v float64) { a.MaxLVR = v },
	"stamp_duty_rate":    func(a *model.Assumptions, v float64) { a.StampDutyRate = v },
	"tax_bracket":        func(a *model.Assumptions, v float64) { a.TaxBracket = v },
	"target_price":       func(a *model.Assumptions, v float64) { a.TargetPrice = v },
	"holding_costs_rate": func(a *model.Assumptions, v float64) { a.HoldingCostsRate = v },
	"vacancy_rate":       func(a *model.Assumptions, v float64) { a.VacancyRate = v },
	"buyers_agent_fee":   func(a *model.Assumptions, v float64) { a.BuyersAgentFee = v },
	"selling_costs_rate": func(a *model.Assumptions, v float64) { a.SellingCostsRate = v },
}

// SensitivitySweep re-runs the full projection and sale optimizer at every
// grid point of a single assumption, holding all else fixed.
func SensitivitySweep(properties []model.Property, cashAllocated float64, a model.Assumptions, targetYears int, monthlyIncomeGoal float64, variable string, r SweepRange) ([]model.SensitivityPoint, error) {
	set, ok := assumptionSetters[variable]
	if !ok {
		return nil, fmt.Errorf("unknown sensitivity variable %q", variable)
	}
	if r.Step <= 0 {
		return nil, &model.InvalidAssumptionError{Field: "step", Reason: "sweep step must be positive"}
	}

	var points []model.SensitivityPoint
	for v := r.Min; v <= r.Max; v += r.Step {
		modified := a
		set(&modified, v)

		projection, err := GenerateProjection(properties, cashAllocated, modified, targetYears)
		if err != nil {
			return nil, err
		}
		scenario := StrategicSaleScenario(projection, monthlyIncomeGoal, modified, targetYears)

		point := model.SensitivityPoint{Value: v}
		if scenario != nil {
			point.MonthlyIncome = scenario.MonthlyIncome
			point.GoalAchieved = scenario.GoalAchieved
			point.PropertiesKept = len(scenario.KeptProperties)
		}
		points = append(points, point)
	}
	return points, nil
}
