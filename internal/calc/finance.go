// Package calc implements the portfolio simulation core: per-property
// year-state math, the year-by-year projection engine, the strategic sale
// optimizer, gap analysis, and sensitivity sweeps. Every function is a pure
// mapping from inputs to fresh output structures.
package calc

import "math"

// FutureValue returns v grown at rate, compounded annually over whole years.
func FutureValue(v, rate float64, years int) float64 {
	return v * math.Pow(1+rate, float64(years))
}

// Equity is the ownership stake, floored at zero.
func Equity(value, loan float64) float64 {
	return math.Max(0, value-loan)
}

// LVR is loan over value. Degenerate values yield 0, never a division by zero.
func LVR(loan, value float64) float64 {
	if value <= 0 {
		return 0
	}
	return loan / value
}

// ExtractableEquity is how far the loan can be increased without exceeding
// the maximum LVR.
func ExtractableEquity(value, loan, maxLVR float64) float64 {
	return math.Max(0, value*maxLVR-loan)
}

// PurchaseCosts covers stamp duty, legals/inspections, and the flat
// buyer's-agent fee for one acquisition.
func PurchaseCosts(price, stampDutyRate, purchaseCostsRate, buyersAgentFee float64) float64 {
	return price*stampDutyRate + price*purchaseCostsRate + buyersAgentFee
}

// DepositRequired is the cash outlay to settle one acquisition at the given
// price: the non-borrowable portion plus all purchase costs.
func DepositRequired(price, maxLVR, stampDutyRate, purchaseCostsRate, buyersAgentFee float64) float64 {
	return price*(1-maxLVR) + PurchaseCosts(price, stampDutyRate, purchaseCostsRate, buyersAgentFee)
}

// AnnualRent is the gross rent implied by a rental yield.
func AnnualRent(value, rentalYield float64) float64 {
	return value * rentalYield
}

// AnnualInterest is the interest-only payment for a year.
func AnnualInterest(loan, rate float64) float64 {
	return loan * rate
}

// PIPayment splits one year of an amortizing loan payment.
type PIPayment struct {
	Annual    float64
	Principal float64
	Interest  float64
}

// AnnualPIPayment amortizes a loan over the remaining years using the
// standard annuity formula on monthly compounding, annualized. The principal
// portion is clamped to [0, loan].
func AnnualPIPayment(loan, rate float64, remainingYears int) PIPayment {
	if loan <= 0 || remainingYears <= 0 {
		return PIPayment{}
	}

	monthlyRate := rate / 12
	payments := float64(remainingYears * 12)

	// PMT: M = P * r(1+r)^n / ((1+r)^n - 1)
	growth := math.Pow(1+monthlyRate, payments)
	monthly := loan * (monthlyRate * growth) / (growth - 1)

	annual := monthly * 12
	interest := loan * rate
	principal := math.Min(annual-interest, loan)

	return PIPayment{Annual: annual, Principal: math.Max(0, principal), Interest: interest}
}

// AnnualHoldingCosts covers management, maintenance, insurance, and rates.
func AnnualHoldingCosts(value, rate float64) float64 {
	return value * rate
}

// CGT is the capital gains tax on a sale. The discount factor applies when
// the property was held for at least a year.
func CGT(salePrice, costBase float64, yearsHeld int, taxBracket, discount float64) float64 {
	gain := salePrice - costBase
	if gain <= 0 {
		return 0
	}
	taxable := gain
	if yearsHeld >= 1 {
		taxable = gain * discount
	}
	return taxable * taxBracket
}

// PropertiesNeededForGoal is how many debt-free properties at the target
// price it takes to gross the annual income goal after tax. Returns 0 when
// the configuration cannot generate income.
func PropertiesNeededForGoal(annualGoal, price, rentalYield, taxBracket float64) int {
	incomePerProperty := price * rentalYield
	if incomePerProperty <= 0 || taxBracket >= 1 {
		return 0
	}
	grossNeeded := annualGoal / (1 - taxBracket)
	return int(math.Ceil(grossNeeded / incomePerProperty))
}
