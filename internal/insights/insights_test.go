package insights

import (
	"testing"

	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/model"
)

func TestGenerateNilWithoutProjection(t *testing.T) {
	a := model.DefaultAssumptions()
	if out := Generate(nil, nil, a, 0, 100000); out != nil {
		t.Fatal("expected no insights without a projection")
	}
}

func TestGenerateReadyToPurchase(t *testing.T) {
	a := model.DefaultAssumptions()
	projection, err := calc.GenerateProjection(nil, 300000, a, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scenario := calc.StrategicSaleScenario(projection, 100000.0/12, a, 10)

	out := Generate(projection, scenario, a, 300000, 100000)
	if len(out) == 0 {
		t.Fatal("expected insights")
	}

	// 300k cash alone covers the 295k deposit.
	if out[0].Title != "Ready to Purchase" {
		t.Fatalf("expected Ready to Purchase first, got %q", out[0].Title)
	}
	if out[0].Priority != PriorityHigh {
		t.Fatalf("expected high priority, got %s", out[0].Priority)
	}
}

func TestGenerateRefinanceToPurchase(t *testing.T) {
	a := model.DefaultAssumptions()
	// Plenty of equity, not enough cash: the deposit needs a refinance.
	properties := []model.Property{{
		ID: "p1", PurchasePrice: 600000, CurrentValue: 1200000, LoanAmount: 400000,
	}}
	projection, err := calc.GenerateProjection(properties, 50000, a, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scenario := calc.StrategicSaleScenario(projection, 100000.0/12, a, 10)

	out := Generate(projection, scenario, a, 50000, 100000)

	found := false
	for _, in := range out {
		if in.Title == "Refinance to Purchase" {
			found = true
		}
		if in.Title == "Ready to Purchase" {
			t.Fatal("cash alone does not cover the deposit")
		}
	}
	if !found {
		t.Fatal("expected a Refinance to Purchase insight")
	}
}

func TestGenerateNegativeCashFlowWarning(t *testing.T) {
	a := model.DefaultAssumptions()
	// A fresh maximally-leveraged purchase runs cash-flow negative.
	projection, err := calc.GenerateProjection(nil, 300000, a, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := Generate(projection, nil, a, 300000, 100000)

	found := false
	for _, in := range out {
		if in.Title == "Negative Cash Flow" {
			found = true
			if in.Type != "warning" {
				t.Fatalf("expected a warning, got %s", in.Type)
			}
		}
	}
	if !found {
		t.Fatal("expected a negative cash flow warning")
	}
}

func TestGenerateGoalInsightsAreExclusive(t *testing.T) {
	a := model.DefaultAssumptions()
	projection, err := calc.GenerateProjection(nil, 300000, a, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	achieved := calc.StrategicSaleScenario(projection, 0, a, 20)
	out := Generate(projection, achieved, a, 300000, 0)
	for _, in := range out {
		if in.Icon == "target" {
			t.Fatal("achieved goal must not emit the shortfall insight")
		}
	}

	missed := calc.StrategicSaleScenario(projection, 1e9, a, 20)
	out = Generate(projection, missed, a, 300000, 12e9)
	for _, in := range out {
		if in.Title == "Goal Achievable" {
			t.Fatal("missed goal must not emit the success insight")
		}
	}
}
