// Package report renders computed results as human-readable markdown. The
// engine itself only ever exposes plain structs; everything here is
// presentation.
package report

import (
	"fmt"
	"strings"

	"roadmap-engine/internal/model"
)

// Projection renders the year-by-year roadmap as a markdown table.
func Projection(projection []model.YearSnapshot) string {
	var b strings.Builder
	b.WriteString("# Portfolio Projection\n\n")
	if len(projection) == 0 {
		b.WriteString("No projection: add a property or allocate cash to begin.\n")
		return b.String()
	}

	b.WriteString("| Year | Properties | Value | Equity | Debt | Rent | Cash | Bought |\n")
	b.WriteString("|-----:|-----------:|------:|-------:|-----:|-----:|-----:|-------:|\n")
	for _, y := range projection {
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s | %s | %d |\n",
			y.Year,
			y.Totals.PropertyCount,
			AUD(y.Totals.TotalValue),
			AUD(y.Totals.TotalEquity),
			AUD(y.Totals.TotalDebt),
			AUD(y.Totals.TotalRent),
			AUD(y.Totals.AccumulatedCash),
			y.Events.PropertiesPurchased,
		)
	}
	return b.String()
}

// SaleScenario renders the terminal disposal strategy.
func SaleScenario(s *model.SaleScenario) string {
	var b strings.Builder
	b.WriteString("# Strategic Sale\n\n")
	if s == nil {
		b.WriteString("No sale scenario computed.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Keep %s debt-free, sell %s of %s at peak.\n\n",
		PropertyCount(s.DebtFreeCount),
		PropertyCount(len(s.PropertiesToSell)),
		PropertyCount(s.TotalPropertiesAtPeak))

	fmt.Fprintf(&b, "- Gross sale proceeds: %s\n", AUD(s.GrossSaleProceeds))
	fmt.Fprintf(&b, "- Capital gains tax: %s\n", AUD(s.TotalCGT))
	fmt.Fprintf(&b, "- Selling costs: %s\n", AUD(s.TotalSellingCosts))
	fmt.Fprintf(&b, "- Net proceeds: %s\n", AUD(s.NetSaleProceeds))
	fmt.Fprintf(&b, "- Debt cleared: %s\n", AUD(s.DebtCleared))
	fmt.Fprintf(&b, "- Surplus cash: %s\n\n", AUD(s.SurplusCash))

	fmt.Fprintf(&b, "After-tax income: %s/year (%s/month)\n",
		AUD(s.AfterTaxIncome), AUD(s.MonthlyIncome))
	if s.GoalAchieved {
		fmt.Fprintf(&b, "Goal achieved with %s/month to spare.\n", AUD(s.Surplus))
	} else {
		fmt.Fprintf(&b, "Short of goal by %s/month.\n", AUD(s.Shortfall))
	}

	if len(s.KeptProperties) > 0 {
		b.WriteString("\n## Kept (debt-free)\n\n")
		for _, p := range s.KeptProperties {
			fmt.Fprintf(&b, "- %s: value %s, net rent %s/year\n", p.Name, AUD(p.CurrentValue), AUD(p.AnnualRent))
		}
	}
	if len(s.PropertiesToSell) > 0 {
		b.WriteString("\n## Sold\n\n")
		for _, p := range s.PropertiesToSell {
			fmt.Fprintf(&b, "- %s: value %s, CGT %s, costs %s, net %s\n",
				p.Name, AUD(p.CurrentValue), AUD(p.CGT), AUD(p.SellingCosts), AUD(p.NetProceeds))
		}
	}
	return b.String()
}

// GapAnalysis renders the shortfall-closing options side by side.
func GapAnalysis(g *model.GapAnalysis) string {
	var b strings.Builder
	b.WriteString("# Gap Analysis\n\n")
	if g == nil {
		b.WriteString("Goal achieved: nothing to close.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Income shortfall: %s/year (%s/month)\n\n", AUD(g.IncomeShortfall), AUD(g.MonthlyShortfall))
	b.WriteString("Options:\n\n")
	fmt.Fprintf(&b, "1. Buy %s more\n", PropertyCount(g.AdditionalProperties))
	fmt.Fprintf(&b, "2. Add %s more starting cash\n", AUD(g.AdditionalCash))
	if g.AdditionalYears > 0 {
		fmt.Fprintf(&b, "3. Extend timeline by %s (to %s total)\n", Years(g.AdditionalYears), Years(g.NewTotalYears))
	} else {
		b.WriteString("3. Extend timeline: not estimable from current growth\n")
	}
	fmt.Fprintf(&b, "4. Adjust goal to %s/year (what's achievable)\n\n", AUD(g.AchievableGoal))

	fmt.Fprintf(&b, "Current outcome: %s kept (%d debt-free), %s/year, %d%% of goal.\n",
		PropertyCount(g.ActualOutcome.PropertiesKept),
		g.ActualOutcome.DebtFreeCount,
		AUD(g.ActualOutcome.AnnualIncome),
		g.ActualOutcome.PercentOfGoal)
	return b.String()
}

// LeversAnalysis renders the lever ranking.
func LeversAnalysis(l *model.LeversAnalysis) string {
	var b strings.Builder
	b.WriteString("# Levers\n\n")
	if l == nil {
		b.WriteString("No levers analysis: add a property or allocate cash first.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Baseline: %d properties, %d debt-free, %s/year after tax.\n\n",
		l.BaseResult.PropertiesAcquired, l.BaseResult.DebtFreeProperties, AUD(l.BaseResult.AnnualIncome))

	b.WriteString("| Lever | Change | Controllable | Properties | Debt-free | Income |\n")
	b.WriteString("|-------|--------|:------------:|-----------:|----------:|-------:|\n")
	for _, lever := range l.Levers {
		controllable := "market"
		if lever.Controllable {
			controllable = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %+d | %+d | %s |\n",
			lever.Name, lever.Change, controllable,
			lever.Impact.PropertiesAcquired, lever.Impact.DebtFreeProperties,
			signedAUD(lever.Impact.AnnualIncome))
	}
	fmt.Fprintf(&b, "\nBiggest lever: %s. Best controllable: %s.\n", l.BiggestLever, l.BestControllable)
	return b.String()
}

// Sensitivity renders a sweep as a table.
func Sensitivity(variable string, points []model.SensitivityPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sensitivity: %s\n\n", variable)
	b.WriteString("| Value | Monthly income | Kept | Goal |\n")
	b.WriteString("|------:|---------------:|-----:|:----:|\n")
	for _, p := range points {
		goal := "no"
		if p.GoalAchieved {
			goal = "yes"
		}
		fmt.Fprintf(&b, "| %g | %s | %d | %s |\n", p.Value, AUD(p.MonthlyIncome), p.PropertiesKept, goal)
	}
	return b.String()
}

func signedAUD(v float64) string {
	if v >= 0 {
		return "+" + AUD(v)
	}
	return "-" + AUD(-v)
}
