// Package insights turns a computed scenario into actionable observations.
// The rule set is an ordered table of (predicate, builder, priority) entries
// evaluated once per computation, so each rule is independently testable.
package insights

import (
	"fmt"
	"math"

	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/model"
	"roadmap-engine/internal/report"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ruleContext is the precomputed state every rule predicate sees.
type ruleContext struct {
	projection    []model.YearSnapshot
	scenario      *model.SaleScenario
	assumptions   model.Assumptions
	cashAllocated float64
	annualGoal    float64

	depositNeeded     float64
	extractableEquity float64
	totalAvailable    float64
	yearOneCashFlow   float64

	firstPurchaseYear *model.YearSnapshot
	nextRefinanceYear *model.YearSnapshot
}

type rule struct {
	priority string
	when     func(*ruleContext) bool
	build    func(*ruleContext) model.Insight
}

// rules is evaluated in order; every matching rule emits one insight.
var rules = []rule{
	{
		priority: PriorityHigh,
		when: func(c *ruleContext) bool {
			return c.totalAvailable >= c.depositNeeded && c.cashAllocated >= c.depositNeeded
		},
		build: func(c *ruleContext) model.Insight {
			return model.Insight{
				Type: "action", Icon: "rocket", Title: "Ready to Purchase",
				Description: fmt.Sprintf("You have enough cash (%s) to cover a %s property deposit. Consider engaging a buyers agent to start your search.",
					report.AUD(c.cashAllocated), report.AUD(c.assumptions.TargetPrice)),
				Action: "Start property search",
			}
		},
	},
	{
		priority: PriorityHigh,
		when: func(c *ruleContext) bool {
			return c.totalAvailable >= c.depositNeeded && c.cashAllocated < c.depositNeeded
		},
		build: func(c *ruleContext) model.Insight {
			return model.Insight{
				Type: "action", Icon: "bank", Title: "Refinance to Purchase",
				Description: fmt.Sprintf("Your current equity allows you to extract %s. Combined with your %s cash, you can fund a new purchase.",
					report.AUD(c.extractableEquity), report.AUD(c.cashAllocated)),
				Action: "Speak to your broker about refinancing",
			}
		},
	},
	{
		priority: PriorityMedium,
		when: func(c *ruleContext) bool {
			return c.totalAvailable < c.depositNeeded && c.firstPurchaseYear != nil
		},
		build: func(c *ruleContext) model.Insight {
			shortfall := c.depositNeeded - c.totalAvailable
			when := "now"
			if y := c.firstPurchaseYear.Year; y > 0 {
				when = "in " + report.Years(y)
			}
			return model.Insight{
				Type: "info", Icon: "clock",
				Title: fmt.Sprintf("Next Purchase: Year %d", c.firstPurchaseYear.Year),
				Description: fmt.Sprintf("You need %s more to reach the %s deposit. Based on equity growth, you'll be ready %s.",
					report.AUD(shortfall), report.AUD(c.depositNeeded), when),
				Action: "Accelerate by saving more cash",
			}
		},
	},
	{
		priority: PriorityHigh,
		when: func(c *ruleContext) bool {
			return c.totalAvailable < c.depositNeeded && c.firstPurchaseYear == nil
		},
		build: func(c *ruleContext) model.Insight {
			shortfall := c.depositNeeded - c.totalAvailable
			return model.Insight{
				Type: "warning", Icon: "alert", Title: "No Purchases Projected",
				Description: fmt.Sprintf("You need %s more to afford a %s property. Consider a lower price point or save more cash.",
					report.AUD(shortfall), report.AUD(c.assumptions.TargetPrice)),
				Action: "Adjust target purchase price or save more",
			}
		},
	},
	{
		priority: PriorityMedium,
		when: func(c *ruleContext) bool {
			return c.nextRefinanceYear != nil && c.firstPurchaseYear == nil
		},
		build: func(c *ruleContext) model.Insight {
			return model.Insight{
				Type: "info", Icon: "calendar",
				Title: fmt.Sprintf("Refinance Opportunity: Year %d", c.nextRefinanceYear.Year),
				Description: fmt.Sprintf("Your next refinance window is in %s. This may unlock equity for your next purchase.",
					report.Years(c.nextRefinanceYear.Year)),
				Action: "Mark calendar for broker review",
			}
		},
	},
	{
		priority: PriorityMedium,
		when:     func(c *ruleContext) bool { return c.yearOneCashFlow < 0 },
		build: func(c *ruleContext) model.Insight {
			monthly := math.Abs(c.yearOneCashFlow) / 12
			return model.Insight{
				Type: "warning", Icon: "wallet", Title: "Negative Cash Flow",
				Description: fmt.Sprintf("Your portfolio currently costs %s/month to hold. Ensure you have sufficient income or savings to cover this.",
					report.AUD(monthly)),
				Action: "Budget for holding costs",
			}
		},
	},
	{
		priority: PriorityLow,
		when:     func(c *ruleContext) bool { return c.yearOneCashFlow > 10000 },
		build: func(c *ruleContext) model.Insight {
			return model.Insight{
				Type: "info", Icon: "trending-up", Title: "Positive Cash Flow",
				Description: fmt.Sprintf("Your portfolio generates %s/year positive cash flow. This accumulates toward your next deposit.",
					report.AUD(c.yearOneCashFlow)),
				Action: "Consider reinvesting surplus",
			}
		},
	},
	{
		priority: PriorityHigh,
		when:     func(c *ruleContext) bool { return c.scenario != nil && c.scenario.GoalAchieved },
		build: func(c *ruleContext) model.Insight {
			return model.Insight{
				Type: "success", Icon: "check-circle", Title: "Goal Achievable",
				Description: fmt.Sprintf("Your current strategy projects %s/year passive income, exceeding your %s/year goal.",
					report.AUD(c.scenario.AfterTaxIncome), report.AUD(c.annualGoal)),
				Action: "Stay the course",
			}
		},
	},
	{
		priority: PriorityHigh,
		when: func(c *ruleContext) bool {
			return c.scenario != nil && !c.scenario.GoalAchieved && c.scenario.AfterTaxIncome > 0
		},
		build: func(c *ruleContext) model.Insight {
			percent := int(math.Round(c.scenario.AfterTaxIncome / c.annualGoal * 100))
			return model.Insight{
				Type: "info", Icon: "target", Title: fmt.Sprintf("%d%% of Goal", percent),
				Description: fmt.Sprintf("You're projected to achieve %s/year, which is %s short of your goal.",
					report.AUD(c.scenario.AfterTaxIncome), report.AUD(c.annualGoal-c.scenario.AfterTaxIncome)),
				Action: "See gap analysis for options",
			}
		},
	},
}

// Generate evaluates the rule table against a computed result.
func Generate(projection []model.YearSnapshot, scenario *model.SaleScenario, a model.Assumptions, cashAllocated, annualIncomeGoal float64) []model.Insight {
	if len(projection) == 0 {
		return nil
	}

	ctx := &ruleContext{
		projection:    projection,
		scenario:      scenario,
		assumptions:   a,
		cashAllocated: cashAllocated,
		annualGoal:    annualIncomeGoal,
		depositNeeded: calc.DepositRequired(a.TargetPrice, a.MaxLVR, a.StampDutyRate, a.PurchaseCostsRate, a.BuyersAgentFee),
	}

	// Funding position is assessed from the opening year at portfolio level.
	year0 := projection[0]
	ctx.extractableEquity = math.Max(0, year0.Totals.TotalValue*a.MaxLVR-year0.Totals.TotalDebt)
	ctx.totalAvailable = cashAllocated + ctx.extractableEquity
	for _, p := range year0.Properties {
		ctx.yearOneCashFlow += p.CashFlow
	}

	for i := range projection {
		y := &projection[i]
		if ctx.firstPurchaseYear == nil && y.Events.PropertiesPurchased > 0 {
			ctx.firstPurchaseYear = y
		}
		if ctx.nextRefinanceYear == nil && y.Year > 0 && y.Events.CanRefinance {
			ctx.nextRefinanceYear = y
		}
	}

	var out []model.Insight
	for _, r := range rules {
		if r.when(ctx) {
			insight := r.build(ctx)
			insight.Priority = r.priority
			out = append(out, insight)
		}
	}
	return out
}
