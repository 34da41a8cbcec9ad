package calc

import (
	"sort"

	"roadmap-engine/internal/model"
)

// StrategicSaleScenario searches the final year snapshot for the
// largest-cardinality set of properties that can be retained completely
// debt-free after selling the rest.
//
// The search is a descending-cardinality greedy over the value-sorted list:
// at most N+1 candidates, keeping the highest-value properties first. It is
// a heuristic, not an exact subset optimization; it assumes higher-value
// properties are the ones worth retaining.
func StrategicSaleScenario(projection []model.YearSnapshot, monthlyIncomeGoal float64, a model.Assumptions, targetYears int) *model.SaleScenario {
	if len(projection) == 0 {
		return nil
	}
	final := projection[len(projection)-1]

	byValue := make([]model.PropertyYear, len(final.Properties))
	copy(byValue, final.Properties)
	sort.SliceStable(byValue, func(i, j int) bool {
		return byValue[i].CurrentValue > byValue[j].CurrentValue
	})

	propertyCGT := func(p model.PropertyYear) float64 {
		costBase := p.PurchasePrice
		if costBase == 0 {
			costBase = p.CurrentValue
		}
		yearsHeld := targetYears - p.YearPurchased
		return CGT(p.CurrentValue, costBase, yearsHeld, a.TaxBracket, a.CGTDiscount)
	}
	sellingCosts := func(p model.PropertyYear) float64 {
		return p.CurrentValue * a.SellingCostsRate
	}

	var scenario *model.SaleScenario

	for keepCount := len(byValue); keepCount >= 0; keepCount-- {
		keep := byValue[:keepCount]
		sell := byValue[keepCount:]

		var debtToClear float64
		for _, p := range keep {
			debtToClear += p.LoanAmount
		}

		var grossProceeds, totalCGT, totalSellingCosts, debtOnSold float64
		for _, p := range sell {
			grossProceeds += p.CurrentValue
			totalCGT += propertyCGT(p)
			totalSellingCosts += sellingCosts(p)
			debtOnSold += p.LoanAmount
		}
		netProceeds := grossProceeds - debtOnSold - totalCGT - totalSellingCosts

		if netProceeds < debtToClear {
			continue
		}

		// Feasible: every kept property's loan is zeroed and its rent
		// recomputed from current value, net of vacancy and holding costs.
		kept := make([]model.PropertyYear, 0, keepCount)
		for _, p := range keep {
			kept = append(kept, retainDebtFree(p, a))
		}
		sold := make([]model.SoldProperty, 0, len(sell))
		for _, p := range sell {
			cgt := propertyCGT(p)
			costs := sellingCosts(p)
			sold = append(sold, model.SoldProperty{
				PropertyYear: p,
				CGT:          cgt,
				SellingCosts: costs,
				NetProceeds:  p.CurrentValue - p.LoanAmount - cgt - costs,
			})
		}

		scenario = &model.SaleScenario{
			KeptProperties:        kept,
			PropertiesToSell:      sold,
			DebtFreeCount:         len(kept),
			TotalPropertiesAtPeak: len(byValue),
			GrossSaleProceeds:     grossProceeds,
			TotalCGT:              totalCGT,
			TotalSellingCosts:     totalSellingCosts,
			NetSaleProceeds:       netProceeds,
			DebtCleared:           debtToClear,
			SurplusCash:           netProceeds - debtToClear,
		}
		break
	}

	// No feasible keep count at all: sell everything. Trivially reachable
	// only when even the empty keep set has negative net proceeds.
	if scenario == nil {
		var grossProceeds, totalCGT, totalSellingCosts, totalDebt float64
		sold := make([]model.SoldProperty, 0, len(byValue))
		for _, p := range byValue {
			cgt := propertyCGT(p)
			costs := sellingCosts(p)
			sold = append(sold, model.SoldProperty{
				PropertyYear: p,
				CGT:          cgt,
				SellingCosts: costs,
				NetProceeds:  p.CurrentValue - p.LoanAmount - cgt - costs,
			})
			grossProceeds += p.CurrentValue
			totalCGT += cgt
			totalSellingCosts += costs
			totalDebt += p.LoanAmount
		}
		scenario = &model.SaleScenario{
			KeptProperties:        []model.PropertyYear{},
			PropertiesToSell:      sold,
			TotalPropertiesAtPeak: len(byValue),
			GrossSaleProceeds:     grossProceeds,
			TotalCGT:              totalCGT,
			TotalSellingCosts:     totalSellingCosts,
			NetSaleProceeds:       grossProceeds - totalDebt - totalCGT - totalSellingCosts,
		}
	}

	for _, p := range scenario.KeptProperties {
		scenario.TotalGrossRent += p.GrossRent
		scenario.TotalNetRent += p.AnnualRent
	}
	scenario.TotalNetCashFlow = scenario.TotalNetRent
	scenario.AfterTaxIncome = scenario.TotalNetCashFlow * (1 - a.TaxBracket)
	scenario.MonthlyIncome = scenario.AfterTaxIncome / 12

	scenario.GoalAchieved = scenario.MonthlyIncome >= monthlyIncomeGoal
	if scenario.GoalAchieved {
		scenario.Surplus = scenario.MonthlyIncome - monthlyIncomeGoal
	} else {
		scenario.Shortfall = monthlyIncomeGoal - scenario.MonthlyIncome
	}
	return scenario
}

// retainDebtFree zeroes the loan and re-derives rent and cash flow for a
// property kept past the disposal. Net rent is effective rent less holding
// costs; with no loan, cash flow equals net rent.
func retainDebtFree(p model.PropertyYear, a model.Assumptions) model.PropertyYear {
	gross := AnnualRent(p.CurrentValue, a.RentalYield)
	effective := gross * (1 - a.VacancyRate)
	holding := AnnualHoldingCosts(p.CurrentValue, a.HoldingCostsRate)
	net := effective - holding

	p.LoanAmount = 0
	p.Equity = p.CurrentValue
	p.LVR = 0
	p.GrossRent = gross
	p.AnnualRent = net
	p.AnnualInterest = 0
	p.PrincipalPayment = 0
	p.TotalLoanPayment = 0
	p.HoldingCosts = holding
	p.CashFlow = net
	p.DebtFree = true
	return p
}
