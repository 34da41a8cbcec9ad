package calc

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFutureValue(t *testing.T) {
	if got := FutureValue(800000, 0.04, 0); got != 800000 {
		t.Fatalf("expected zero years to be identity, got %f", got)
	}
	if got := FutureValue(100000, 0.04, 1); !almostEqual(got, 104000, 0.01) {
		t.Fatalf("expected 104000 after one year at 4%%, got %f", got)
	}
	// Compounding, not linear growth
	if got := FutureValue(100000, 0.04, 2); !almostEqual(got, 108160, 0.01) {
		t.Fatalf("expected 108160 after two years, got %f", got)
	}
}

func TestEquityFloorsAtZero(t *testing.T) {
	if got := Equity(800000, 640000); got != 160000 {
		t.Fatalf("expected equity 160000, got %f", got)
	}
	if got := Equity(500000, 640000); got != 0 {
		t.Fatalf("underwater property should report zero equity, got %f", got)
	}
}

func TestLVRDegenerateValue(t *testing.T) {
	if got := LVR(640000, 800000); got != 0.8 {
		t.Fatalf("expected LVR 0.8, got %f", got)
	}
	if got := LVR(640000, 0); got != 0 {
		t.Fatalf("zero value must not divide, got %f", got)
	}
}

func TestExtractableEquity(t *testing.T) {
	// 800k at 80% LVR supports a 640k loan; 500k owing leaves 140k
	if got := ExtractableEquity(800000, 500000, 0.80); got != 140000 {
		t.Fatalf("expected 140000 extractable, got %f", got)
	}
	if got := ExtractableEquity(800000, 700000, 0.80); got != 0 {
		t.Fatalf("over-leveraged property should extract nothing, got %f", got)
	}
}

func TestDepositRequired(t *testing.T) {
	// 20% deposit + 5.5% stamp duty + 2% costs + flat 20k fee on 1M
	got := DepositRequired(1000000, 0.80, 0.055, 0.02, 20000)
	if !almostEqual(got, 295000, 0.01) {
		t.Fatalf("expected 295000, got %f", got)
	}
}

func TestAnnualPIPayment(t *testing.T) {
	pi := AnnualPIPayment(640000, 0.065, 25)
	if pi.Annual <= 0 {
		t.Fatalf("expected positive annual payment, got %f", pi.Annual)
	}
	if !almostEqual(pi.Interest, 640000*0.065, 0.01) {
		t.Fatalf("expected interest 41600, got %f", pi.Interest)
	}
	if !almostEqual(pi.Annual, pi.Interest+pi.Principal, 0.01) {
		t.Fatalf("payment must split into interest plus principal")
	}
	if pi.Principal <= 0 {
		t.Fatalf("amortizing loan must pay down principal, got %f", pi.Principal)
	}
}

func TestAnnualPIPaymentDegenerate(t *testing.T) {
	if pi := AnnualPIPayment(0, 0.065, 25); pi.Annual != 0 {
		t.Fatalf("zero loan should cost nothing, got %f", pi.Annual)
	}
	if pi := AnnualPIPayment(640000, 0.065, 0); pi.Annual != 0 {
		t.Fatalf("zero remaining years should cost nothing, got %f", pi.Annual)
	}
}

func TestAnnualPIPaymentShortTermClampsPrincipal(t *testing.T) {
	// One year remaining: the principal portion cannot exceed the balance.
	pi := AnnualPIPayment(10000, 0.065, 1)
	if pi.Principal > 10000 {
		t.Fatalf("principal %f exceeds loan balance", pi.Principal)
	}
}

func TestCGT(t *testing.T) {
	// 400k gain held 10 years: 50% discount then 37% marginal rate
	if got := CGT(1000000, 600000, 10, 0.37, 0.50); !almostEqual(got, 74000, 0.01) {
		t.Fatalf("expected CGT 74000, got %f", got)
	}
	// Held under a year: no discount
	if got := CGT(1000000, 600000, 0, 0.37, 0.50); !almostEqual(got, 148000, 0.01) {
		t.Fatalf("expected undiscounted CGT 148000, got %f", got)
	}
	if got := CGT(500000, 600000, 10, 0.37, 0.50); got != 0 {
		t.Fatalf("capital loss must not be taxed, got %f", got)
	}
}

func TestPropertiesNeededForGoal(t *testing.T) {
	// 100k after tax at 37% needs ~158,730 gross; 45k/property => 4
	if got := PropertiesNeededForGoal(100000, 1000000, 0.045, 0.37); got != 4 {
		t.Fatalf("expected 4 properties, got %d", got)
	}
	if got := PropertiesNeededForGoal(100000, 0, 0.045, 0.37); got != 0 {
		t.Fatalf("zero price cannot generate income, got %d", got)
	}
}
