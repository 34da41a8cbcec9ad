package calc

import (
	"math"

	"roadmap-engine/internal/model"
)

// StandardLoanTerm is the full amortization term a loan reverts to after its
// interest-only period.
const StandardLoanTerm = 30

// carriedProperty is the state the projection carries between year ticks:
// identity, the stored loan balance, and the immutable acquisition baselines.
type carriedProperty struct {
	id            string
	name          string
	purchasePrice float64
	loan          float64
	yearPurchased int
	baseValue     float64
	baseRent      float64
}

// propertyYear derives a property's full state for a given simulation year.
// Value compounds from the purchase price every year rather than from the
// previous year's value, so repeated runs cannot drift.
func propertyYear(c carriedProperty, year int, a model.Assumptions) model.PropertyYear {
	yearsHeld := year - c.yearPurchased
	value := FutureValue(c.purchasePrice, a.AppreciationRate, yearsHeld)
	loanAge := yearsHeld

	var interest, principal, totalPayment float64
	interestOnly := loanAge < a.InterestOnlyYears
	if interestOnly || c.loan <= 0 {
		interestOnly = true
		interest = AnnualInterest(c.loan, a.InterestRate)
		totalPayment = interest
	} else {
		yearsInPI := loanAge - a.InterestOnlyYears
		remaining := StandardLoanTerm - a.InterestOnlyYears - yearsInPI
		if remaining < 1 {
			remaining = 1
		}
		pi := AnnualPIPayment(c.loan, a.InterestRate, remaining)
		interest = pi.Interest
		principal = pi.Principal
		totalPayment = pi.Annual
	}

	// Rent grows from the acquisition baseline, decoupled from value growth.
	var grossRent float64
	if c.baseRent > 0 {
		grossRent = c.baseRent * math.Pow(1+a.RentGrowthRate, float64(yearsHeld))
	} else {
		grossRent = AnnualRent(c.baseValue, a.RentalYield) * math.Pow(1+a.RentGrowthRate, float64(yearsHeld))
	}
	effectiveRent := grossRent * (1 - a.VacancyRate)
	holding := AnnualHoldingCosts(value, a.HoldingCostsRate)

	return model.PropertyYear{
		ID:                  c.id,
		Name:                c.name,
		PurchasePrice:       c.purchasePrice,
		CurrentValue:        value,
		LoanAmount:          c.loan,
		YearPurchased:       c.yearPurchased,
		BaseValueAtPurchase: c.baseValue,
		BaseRentAtPurchase:  c.baseRent,
		Equity:              Equity(value, c.loan),
		LVR:                 LVR(c.loan, value),
		GrossRent:           grossRent,
		AnnualRent:          effectiveRent,
		AnnualInterest:      interest,
		PrincipalPayment:    principal,
		TotalLoanPayment:    totalPayment,
		HoldingCosts:        holding,
		CashFlow:            effectiveRent - totalPayment - holding,
		InterestOnly:        interestOnly,
		LoanAge:             loanAge,
	}
}
