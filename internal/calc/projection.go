package calc

import (
	"fmt"
	"math"

	"roadmap-engine/internal/model"
)

// GenerateProjection runs the year-by-year simulation from year 0 through
// targetYears inclusive. Each tick revalues every holding, funds any
// eligible acquisitions cash-first then equity-second, accumulates cash
// flow, and amortizes loans before the next tick. The input property list is
// never mutated; every snapshot owns an independent property list.
//
// Degenerate configuration (non-positive target price or deposit, refinance
// interval below one year) is rejected before the loop starts. An empty
// starting position (no properties and no cash) yields an empty projection.
func GenerateProjection(properties []model.Property, cashAllocated float64, a model.Assumptions, targetYears int) ([]model.YearSnapshot, error) {
	if err := a.CheckConfig(); err != nil {
		return nil, err
	}
	if len(properties) == 0 && cashAllocated == 0 {
		return nil, nil
	}

	current := make([]carriedProperty, 0, len(properties))
	for _, p := range properties {
		purchase := p.PurchasePrice
		if purchase == 0 {
			purchase = p.CurrentValue
		}
		current = append(current, carriedProperty{
			id:            p.ID,
			name:          p.Name,
			purchasePrice: purchase,
			loan:          p.LoanAmount,
			yearPurchased: 0,
			baseValue:     p.CurrentValue,
			baseRent:      p.AnnualRent,
		})
	}

	cash := cashAllocated
	projection := make([]model.YearSnapshot, 0, targetYears+1)

	for year := 0; year <= targetYears; year++ {
		yearProps := make([]model.PropertyYear, len(current))
		for i, c := range current {
			yearProps[i] = propertyYear(c, year, a)
		}

		// Funding position before any purchase this year.
		var extractable float64
		for _, p := range yearProps {
			extractable += ExtractableEquity(p.CurrentValue, p.LoanAmount, a.MaxLVR)
		}
		deposit := DepositRequired(a.TargetPrice, a.MaxLVR, a.StampDutyRate, a.PurchaseCostsRate, a.BuyersAgentFee)
		availableFunds := extractable + cash
		possible := int(math.Floor(availableFunds / deposit))

		// Year 0 buys on cash alone; later years only at refinance intervals.
		isRefinanceYear := year > 0 && year%a.RefinanceInterval == 0
		canPurchase := isRefinanceYear || (year == 0 && cash >= deposit)

		var purchased int
		var refinanceAmount, cashUsed float64

		if canPurchase && possible > 0 {
			purchased = possible
			if purchased > a.MaxPurchasesPerCycle {
				purchased = a.MaxPurchasesPerCycle
			}
			totalCost := float64(purchased) * deposit

			if cash >= totalCost {
				cashUsed = totalCost
				cash -= totalCost
			} else {
				cashUsed = cash
				refinanceAmount = totalCost - cash
				cash = 0

				// Draw the shortfall from holdings in list order. The order
				// decides which holdings end up more leveraged, not the
				// portfolio totals; it is fixed for reproducibility.
				remaining := refinanceAmount
				for i := range yearProps {
					avail := ExtractableEquity(yearProps[i].CurrentValue, yearProps[i].LoanAmount, a.MaxLVR)
					draw := math.Min(avail, remaining)
					if draw > 0 {
						yearProps[i].LoanAmount += draw
						yearProps[i].Equity = Equity(yearProps[i].CurrentValue, yearProps[i].LoanAmount)
						yearProps[i].LVR = LVR(yearProps[i].LoanAmount, yearProps[i].CurrentValue)
						remaining -= draw
					}
					if remaining <= 0 {
						break
					}
				}
			}

			// New acquisitions join this year's snapshot immediately:
			// full target price, maximum LVR, interest-only from day one.
			for i := 0; i < purchased; i++ {
				c := carriedProperty{
					id:            fmt.Sprintf("new-%d-%d", year, i),
					name:          fmt.Sprintf("Property %d (Year %d)", len(current)+i+1, year),
					purchasePrice: a.TargetPrice,
					loan:          a.TargetPrice * a.MaxLVR,
					yearPurchased: year,
					baseValue:     a.TargetPrice,
					baseRent:      0,
				}
				yearProps = append(yearProps, propertyYear(c, year, a))
			}
		}

		// The year's net cash flow, acquisitions included, feeds the cash
		// balance. A negative year is funded from the investor's other
		// income and never propagates as portfolio debt.
		var totalCashFlow float64
		for _, p := range yearProps {
			totalCashFlow += p.CashFlow
		}
		cash += totalCashFlow
		if cash < 0 {
			cash = 0
		}

		totals := portfolioTotals(yearProps)
		totals.ExtractableEquity = extractable
		totals.AvailableFunds = availableFunds
		totals.AccumulatedCash = cash

		projection = append(projection, model.YearSnapshot{
			Year:       year,
			Properties: yearProps,
			Totals:     totals,
			Events: model.YearEvents{
				CanRefinance:          isRefinanceYear,
				PropertiesPurchased:   purchased,
				RefinanceAmount:       refinanceAmount,
				CashUsed:              cashUsed,
				NewPropertiesPossible: possible,
			},
		})

		// Carry forward: amortize this year's principal, keep baselines.
		next := make([]carriedProperty, len(yearProps))
		for i, p := range yearProps {
			next[i] = carriedProperty{
				id:            p.ID,
				name:          p.Name,
				purchasePrice: p.PurchasePrice,
				loan:          math.Max(0, p.LoanAmount-p.PrincipalPayment),
				yearPurchased: p.YearPurchased,
				baseValue:     p.BaseValueAtPurchase,
				baseRent:      p.BaseRentAtPurchase,
			}
		}
		current = next
	}

	return projection, nil
}

func portfolioTotals(properties []model.PropertyYear) model.PortfolioTotals {
	t := model.PortfolioTotals{PropertyCount: len(properties)}
	for _, p := range properties {
		t.TotalValue += p.CurrentValue
		t.TotalEquity += p.Equity
		t.TotalDebt += p.LoanAmount
		t.TotalRent += p.AnnualRent
	}
	return t
}
