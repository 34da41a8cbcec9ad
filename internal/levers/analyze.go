package levers

import (
	"math"
	"sort"

	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/model"
)

type outcome struct {
	propertiesAcquired int
	debtFreeCount      int
	annualIncome       float64
}

// Analyze runs every registered lever against the baseline and ranks them by
// absolute income impact. Returns nil with no error when there is nothing to
// analyze (no properties and no cash).
func Analyze(in Inputs, annualIncomeGoal float64) (*model.LeversAnalysis, error) {
	if len(in.Properties) == 0 && in.CashAllocated == 0 {
		return nil, nil
	}

	base, err := run(in, annualIncomeGoal)
	if err != nil {
		return nil, err
	}

	analysis := &model.LeversAnalysis{
		BaseResult: model.LeverImpact{
			PropertiesAcquired: base.propertiesAcquired,
			DebtFreeProperties: base.debtFreeCount,
			AnnualIncome:       base.annualIncome,
		},
	}

	for _, lever := range All() {
		perturbed, err := run(lever.Apply(in), annualIncomeGoal)
		if err != nil {
			// A perturbation can push the configuration out of its valid
			// domain (e.g. target price below the decrease). Skip it.
			continue
		}
		analysis.Levers = append(analysis.Levers, model.LeverResult{
			ID:           lever.ID(),
			Name:         lever.Name(),
			Change:       lever.Change(),
			Controllable: lever.Controllable(),
			Impact: model.LeverImpact{
				PropertiesAcquired: perturbed.propertiesAcquired - base.propertiesAcquired,
				DebtFreeProperties: perturbed.debtFreeCount - base.debtFreeCount,
				AnnualIncome:       perturbed.annualIncome - base.annualIncome,
			},
		})
	}

	sort.SliceStable(analysis.Levers, func(i, j int) bool {
		return math.Abs(analysis.Levers[i].Impact.AnnualIncome) > math.Abs(analysis.Levers[j].Impact.AnnualIncome)
	})

	for _, l := range analysis.Levers {
		if l.Controllable {
			analysis.Controllable = append(analysis.Controllable, l)
		} else {
			analysis.Market = append(analysis.Market, l)
		}
	}
	if len(analysis.Levers) > 0 {
		analysis.BiggestLever = analysis.Levers[0].Name
	}
	if len(analysis.Controllable) > 0 {
		analysis.BestControllable = analysis.Controllable[0].Name
	}
	return analysis, nil
}

// run executes one full projection + sale optimization and reduces it to the
// three outcome figures levers are measured on.
func run(in Inputs, annualIncomeGoal float64) (outcome, error) {
	projection, err := calc.GenerateProjection(in.Properties, in.CashAllocated, in.Assumptions, in.TargetYears)
	if err != nil {
		return outcome{}, err
	}

	var out outcome
	if len(projection) > 0 {
		out.propertiesAcquired = len(projection[len(projection)-1].Properties)
	} else {
		out.propertiesAcquired = len(in.Properties)
	}

	scenario := calc.StrategicSaleScenario(projection, annualIncomeGoal/12, in.Assumptions, in.TargetYears)
	if scenario != nil {
		out.debtFreeCount = scenario.DebtFreeCount
		out.annualIncome = scenario.AfterTaxIncome
	}
	return out, nil
}
