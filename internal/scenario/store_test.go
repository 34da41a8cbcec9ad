package scenario

import (
	"path/filepath"
	"testing"

	"roadmap-engine/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "scenarios.json"))
}

func sampleRequest(cash float64) model.CalculationRequest {
	return model.CalculationRequest{
		Properties: []model.Property{{
			ID: "p1", Name: "Home Unit", PurchasePrice: 800000, CurrentValue: 800000, LoanAmount: 640000,
		}},
		CashAllocated:    cash,
		AnnualIncomeGoal: 100000,
		TargetYears:      15,
	}
}

func TestStoreEmptyFileListsNothing(t *testing.T) {
	store := testStore(t)
	list, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty store, got %d scenarios", len(list))
	}
}

func TestStorePutGetRoundTrip(t *testing.T) {
	store := testStore(t)

	saved, err := store.Put("baseline", sampleRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt == "" {
		t.Fatal("expected id and timestamp assigned")
	}

	byID, err := store.Get(saved.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byID.Name != "baseline" {
		t.Fatalf("expected name baseline, got %s", byID.Name)
	}
	if byID.Inputs.CashAllocated != 100000 {
		t.Fatalf("expected cash 100000, got %f", byID.Inputs.CashAllocated)
	}

	byName, err := store.Get("baseline")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if byName.ID != saved.ID {
		t.Fatal("lookup by name returned a different scenario")
	}
}

func TestStoreGetUnknown(t *testing.T) {
	store := testStore(t)
	if _, err := store.Get("nothing"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestStoreDelete(t *testing.T) {
	store := testStore(t)
	if _, err := store.Put("a", sampleRequest(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Put("b", sampleRequest(50000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, err := store.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Name != "b" {
		t.Fatal("expected only scenario b to remain")
	}

	if err := store.Delete("a"); err == nil {
		t.Fatal("expected error deleting a missing scenario")
	}
}

func TestDiffReportsChangedInputs(t *testing.T) {
	store := testStore(t)
	a, err := store.Put("lean", sampleRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := store.Put("funded", sampleRequest(300000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch, err := Diff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, op := range patch {
		if op["path"] == "/cash_allocated" {
			found = true
			if op["op"] != "replace" {
				t.Fatalf("expected replace, got %v", op["op"])
			}
		}
	}
	if !found {
		t.Fatal("expected a patch op on /cash_allocated")
	}
}

func TestDiffIdenticalScenariosIsEmpty(t *testing.T) {
	store := testStore(t)
	a, err := store.Put("one", sampleRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := store.Put("two", sampleRequest(100000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	patch, err := Diff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patch) != 0 {
		t.Fatalf("expected empty patch for identical inputs, got %d ops", len(patch))
	}
}
