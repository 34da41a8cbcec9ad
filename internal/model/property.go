package model

// Property is a caller-supplied holding: what was paid, what it is worth,
// and what is owed. An explicit annual rent overrides the yield assumption.
type Property struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	LoanAmount    float64 `json:"loan_amount"`
	AnnualRent    float64 `json:"annual_rent,omitempty"`
}

// PropertyYear is one property's fully derived state for a single projection
// year. Snapshots are value objects: each year produces a fresh list and no
// year's state is ever aliased into the next.
type PropertyYear struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentValue  float64 `json:"current_value"`
	LoanAmount    float64 `json:"loan_amount"`

	// Acquisition baselines. Rent grows from these independently of value.
	YearPurchased       int     `json:"year_purchased"`
	BaseValueAtPurchase float64 `json:"base_value_at_purchase"`
	BaseRentAtPurchase  float64 `json:"base_rent_at_purchase"`

	Equity           float64 `json:"equity"`
	LVR              float64 `json:"lvr"`
	GrossRent        float64 `json:"gross_rent"`
	AnnualRent       float64 `json:"annual_rent"` // effective, after vacancy
	AnnualInterest   float64 `json:"annual_interest"`
	PrincipalPayment float64 `json:"principal_payment"`
	TotalLoanPayment float64 `json:"total_loan_payment"`
	HoldingCosts     float64 `json:"holding_costs"`
	CashFlow         float64 `json:"cash_flow"`
	InterestOnly     bool    `json:"interest_only"`
	LoanAge          int     `json:"loan_age"`
	DebtFree         bool    `json:"debt_free,omitempty"`
}
