package model

// SoldProperty annotates a disposed property with its exit economics.
type SoldProperty struct {
	PropertyYear
	CGT          float64 `json:"cgt"`
	SellingCosts float64 `json:"selling_costs"`
	NetProceeds  float64 `json:"net_proceeds"`
}

// SaleScenario is the terminal disposal strategy: which properties are
// retained completely debt-free, which are sold, and the income that
// results. Computed once from the final year snapshot, never mutated.
type SaleScenario struct {
	KeptProperties        []PropertyYear `json:"kept_properties"`
	PropertiesToSell      []SoldProperty `json:"properties_to_sell"`
	DebtFreeCount         int            `json:"debt_free_count"`
	TotalPropertiesAtPeak int            `json:"total_properties_at_peak"`

	GrossSaleProceeds float64 `json:"gross_sale_proceeds"`
	TotalCGT          float64 `json:"total_cgt"`
	TotalSellingCosts float64 `json:"total_selling_costs"`
	NetSaleProceeds   float64 `json:"net_sale_proceeds"`
	DebtCleared       float64 `json:"debt_cleared"`
	SurplusCash       float64 `json:"surplus_cash"`

	TotalGrossRent   float64 `json:"total_gross_rent"`
	TotalNetRent     float64 `json:"total_net_rent"`
	TotalNetCashFlow float64 `json:"total_net_cash_flow"`
	AfterTaxIncome   float64 `json:"after_tax_income"`
	MonthlyIncome    float64 `json:"monthly_income"`

	GoalAchieved bool    `json:"goal_achieved"`
	Shortfall    float64 `json:"shortfall"` // monthly
	Surplus      float64 `json:"surplus"`   // monthly
}
