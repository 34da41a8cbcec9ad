package model

import "testing"

func TestDefaultAssumptionsAreValid(t *testing.T) {
	a := DefaultAssumptions()
	if err := a.CheckConfig(); err != nil {
		t.Fatalf("defaults must pass config check: %v", err)
	}
	if msgs := ValidateAssumptions(a); len(msgs) != 0 {
		t.Fatalf("defaults must produce no advisories, got %d", len(msgs))
	}
}

func TestCheckConfigRejections(t *testing.T) {
	a := DefaultAssumptions()
	a.TargetPrice = 0
	if err := a.CheckConfig(); err == nil {
		t.Fatal("expected rejection of zero target price")
	}

	a = DefaultAssumptions()
	a.RefinanceInterval = 0
	if err := a.CheckConfig(); err == nil {
		t.Fatal("expected rejection of zero refinance interval")
	}

	var bad *InvalidAssumptionError
	a = DefaultAssumptions()
	a.TargetPrice = -5
	err := a.CheckConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	var ok bool
	bad, ok = err.(*InvalidAssumptionError)
	if !ok {
		t.Fatalf("expected InvalidAssumptionError, got %T", err)
	}
	if bad.Field != "target_price" {
		t.Fatalf("expected field target_price, got %s", bad.Field)
	}
}

func TestValidateAssumptionsAdvisories(t *testing.T) {
	a := DefaultAssumptions()
	a.AppreciationRate = 0.09
	msgs := ValidateAssumptions(a)
	if len(msgs) != 1 || msgs[0].Level != LevelCritical {
		t.Fatalf("expected one critical advisory, got %+v", msgs)
	}

	a = DefaultAssumptions()
	a.AppreciationRate = 0.07
	a.RentalYield = 0.07
	a.InterestRate = 0.04
	msgs = ValidateAssumptions(a)
	if len(msgs) != 3 {
		t.Fatalf("expected three warnings, got %d", len(msgs))
	}
	for _, m := range msgs {
		if m.Level != LevelWarning {
			t.Fatalf("expected warnings only, got %s", m.Level)
		}
	}
}

func TestNormalizeFillsPolicyDefaults(t *testing.T) {
	a := Assumptions{TargetPrice: 500000, MaxLVR: 0.8, RefinanceInterval: 2}
	a.Normalize()
	if a.MaxPurchasesPerCycle != 3 {
		t.Fatalf("expected default purchase cap 3, got %d", a.MaxPurchasesPerCycle)
	}
	// Market rates are never silently filled.
	if a.AppreciationRate != 0 {
		t.Fatalf("normalize must not touch market rates, got %f", a.AppreciationRate)
	}
}

func TestResolvedAssumptions(t *testing.T) {
	req := &CalculationRequest{}
	if got := req.ResolvedAssumptions(); got != DefaultAssumptions() {
		t.Fatal("nil assumptions must resolve to the defaults")
	}

	custom := DefaultAssumptions()
	custom.AppreciationRate = 0.05
	custom.MaxPurchasesPerCycle = 0
	req = &CalculationRequest{Assumptions: &custom}
	got := req.ResolvedAssumptions()
	if got.AppreciationRate != 0.05 {
		t.Fatalf("expected supplied rate kept, got %f", got.AppreciationRate)
	}
	if got.MaxPurchasesPerCycle != 3 {
		t.Fatalf("expected purchase cap normalized, got %d", got.MaxPurchasesPerCycle)
	}
	// The caller's record is never mutated in place.
	if custom.MaxPurchasesPerCycle != 0 {
		t.Fatal("resolution mutated the caller's assumptions")
	}
}
