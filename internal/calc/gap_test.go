package calc

import (
	"errors"
	"testing"

	"roadmap-engine/internal/model"
)

func TestGapAnalysisNilWhenAchieved(t *testing.T) {
	a := model.DefaultAssumptions()
	achieved := &model.SaleScenario{GoalAchieved: true}
	gap, err := GapAnalysis(nil, achieved, a, 100000, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gap != nil {
		t.Fatal("expected nil gap when the goal is achieved")
	}

	gap, err = GapAnalysis(nil, nil, a, 100000, 10)
	if err != nil || gap != nil {
		t.Fatal("expected nil gap without a scenario")
	}
}

func TestGapAnalysisOptions(t *testing.T) {
	a := model.DefaultAssumptions()
	scenario := &model.SaleScenario{
		GoalAchieved:   false,
		AfterTaxIncome: 20000,
		MonthlyIncome:  20000.0 / 12,
		DebtFreeCount:  1,
		KeptProperties: []model.PropertyYear{{ID: "a", CurrentValue: 1000000}},
	}

	gap, err := GapAnalysis(nil, scenario, a, 50000, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gap == nil {
		t.Fatal("expected a gap analysis")
	}

	if !almostEqual(gap.IncomeShortfall, 30000, 0.01) {
		t.Fatalf("expected shortfall 30000, got %f", gap.IncomeShortfall)
	}
	if !almostEqual(gap.MonthlyShortfall, 2500, 0.01) {
		t.Fatalf("expected monthly shortfall 2500, got %f", gap.MonthlyShortfall)
	}

	// Income per extra property at defaults:
	// 1M * (0.045*0.96 - 0.025) * 0.63 = 11,466/year => 3 properties
	if gap.AdditionalProperties != 3 {
		t.Fatalf("expected 3 additional properties, got %d", gap.AdditionalProperties)
	}
	if !almostEqual(gap.AdditionalCash, 3*295000, 0.01) {
		t.Fatalf("expected 885000 additional cash, got %f", gap.AdditionalCash)
	}
	if gap.AchievableGoal != 20000 {
		t.Fatalf("expected achievable goal 20000, got %f", gap.AchievableGoal)
	}
	if gap.ActualOutcome.PercentOfGoal != 40 {
		t.Fatalf("expected 40%% of goal, got %d", gap.ActualOutcome.PercentOfGoal)
	}
	if gap.ActualOutcome.PortfolioValue != 1000000 {
		t.Fatalf("expected kept portfolio value 1000000, got %f", gap.ActualOutcome.PortfolioValue)
	}
}

func TestGapAnalysisAdditionalYearsFromProjection(t *testing.T) {
	a := model.DefaultAssumptions()
	scenario := &model.SaleScenario{AfterTaxIncome: 20000}
	projection := []model.YearSnapshot{
		{Year: 10, Totals: model.PortfolioTotals{TotalValue: 3000000}},
	}

	gap, err := GapAnalysis(projection, scenario, a, 50000, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gap.AdditionalYears <= 0 {
		t.Fatalf("expected a positive timeline extension, got %d", gap.AdditionalYears)
	}
	if gap.NewTotalYears != 10+gap.AdditionalYears {
		t.Fatalf("new total years %d inconsistent with extension %d", gap.NewTotalYears, gap.AdditionalYears)
	}
}

func TestGapAnalysisRejectsUnprofitableConfiguration(t *testing.T) {
	a := model.DefaultAssumptions()
	a.HoldingCostsRate = 0.05 // consumes the whole yield
	scenario := &model.SaleScenario{AfterTaxIncome: 20000}

	_, err := GapAnalysis(nil, scenario, a, 50000, 10)
	if err == nil {
		t.Fatal("expected error when holding costs consume the yield")
	}
	var bad *model.InvalidAssumptionError
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidAssumptionError, got %T", err)
	}
	if bad.Field != "holding_costs_rate" {
		t.Fatalf("expected field holding_costs_rate, got %s", bad.Field)
	}
}
