package model

// Assumptions is the flat configuration bundle driving a projection.
// All rates are fractions in [0,1]; currency fields are in dollars.
type Assumptions struct {
	AppreciationRate  float64 `json:"appreciation_rate" yaml:"appreciation_rate"`
	RentGrowthRate    float64 `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	RentalYield       float64 `json:"rental_yield" yaml:"rental_yield"`
	InterestRate      float64 `json:"interest_rate" yaml:"interest_rate"`
	MaxLVR            float64 `json:"max_lvr" yaml:"max_lvr"`
	StampDutyRate     float64 `json:"stamp_duty_rate" yaml:"stamp_duty_rate"`
	PurchaseCostsRate float64 `json:"purchase_costs_rate" yaml:"purchase_costs_rate"`
	TaxBracket        float64 `json:"tax_bracket" yaml:"tax_bracket"`
	RefinanceInterval int     `json:"refinance_interval" yaml:"refinance_interval"`
	TargetPrice       float64 `json:"target_price" yaml:"target_price"`
	HoldingCostsRate  float64 `json:"holding_costs_rate" yaml:"holding_costs_rate"`
	VacancyRate       float64 `json:"vacancy_rate" yaml:"vacancy_rate"`
	BuyersAgentFee    float64 `json:"buyers_agent_fee" yaml:"buyers_agent_fee"`
	SellingCostsRate  float64 `json:"selling_costs_rate" yaml:"selling_costs_rate"`
	InterestOnlyYears int     `json:"interest_only_years" yaml:"interest_only_years"`
	CGTDiscount       float64 `json:"cgt_discount" yaml:"cgt_discount"`

	// MaxPurchasesPerCycle caps acquisitions in any one eligible year. The
	// cap is a realism policy, not a physical limit.
	MaxPurchasesPerCycle int `json:"max_purchases_per_cycle" yaml:"max_purchases_per_cycle"`
}

// DefaultAssumptions returns the stock Sydney-market configuration.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		AppreciationRate:     0.04,
		RentGrowthRate:       0.025,
		RentalYield:          0.045,
		InterestRate:         0.065,
		MaxLVR:               0.80,
		StampDutyRate:        0.055,
		PurchaseCostsRate:    0.02,
		TaxBracket:           0.37,
		RefinanceInterval:    2,
		TargetPrice:          1000000,
		HoldingCostsRate:     0.025,
		VacancyRate:          0.04,
		BuyersAgentFee:       20000,
		SellingCostsRate:     0.025,
		InterestOnlyYears:    5,
		CGTDiscount:          0.50,
		MaxPurchasesPerCycle: 3,
	}
}

// Range bounds a single tunable assumption for input surfaces.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// AssumptionRanges returns the valid range for each tunable field.
func AssumptionRanges() map[string]Range {
	return map[string]Range{
		"appreciation_rate":   {Min: 0, Max: 0.10, Step: 0.005},
		"rent_growth_rate":    {Min: 0, Max: 0.05, Step: 0.005},
		"rental_yield":        {Min: 0.02, Max: 0.08, Step: 0.005},
		"interest_rate":       {Min: 0.04, Max: 0.10, Step: 0.005},
		"max_lvr":             {Min: 0.60, Max: 0.85, Step: 0.05},
		"stamp_duty_rate":     {Min: 0.04, Max: 0.07, Step: 0.005},
		"tax_bracket":         {Min: 0.19, Max: 0.47, Step: 0.01},
		"holding_costs_rate":  {Min: 0.01, Max: 0.05, Step: 0.005},
		"vacancy_rate":        {Min: 0, Max: 0.10, Step: 0.01},
		"buyers_agent_fee":    {Min: 0, Max: 40000, Step: 5000},
		"selling_costs_rate":  {Min: 0.01, Max: 0.04, Step: 0.005},
		"interest_only_years": {Min: 0, Max: 10, Step: 1},
	}
}

// Normalize fills policy fields a caller may have omitted. It never touches
// market rates: nonsensical rate input is the caller's responsibility.
func (a *Assumptions) Normalize() {
	if a.MaxPurchasesPerCycle <= 0 {
		a.MaxPurchasesPerCycle = 3
	}
}

// CheckConfig rejects configurations that would make the projection
// undefined. Returns nil when the configuration is computable.
func (a *Assumptions) CheckConfig() error {
	if a.TargetPrice <= 0 {
		return &InvalidAssumptionError{Field: "target_price", Reason: "target acquisition price must be positive"}
	}
	if a.RefinanceInterval < 1 {
		return &InvalidAssumptionError{Field: "refinance_interval", Reason: "refinance interval must be at least 1 year"}
	}
	deposit := a.TargetPrice*(1-a.MaxLVR) + a.TargetPrice*a.StampDutyRate + a.TargetPrice*a.PurchaseCostsRate + a.BuyersAgentFee
	if deposit <= 0 {
		return &InvalidAssumptionError{Field: "max_lvr", Reason: "deposit required per acquisition must be positive"}
	}
	return nil
}

// ValidateAssumptions returns advisory messages for configurations that are
// computable but optimistic against Sydney market benchmarks.
func ValidateAssumptions(a Assumptions) []CalculationMessage {
	var msgs []CalculationMessage
	add := func(level, code, field, text string) {
		msgs = append(msgs, CalculationMessage{ID: len(msgs), Level: level, Code: code, Field: field, Message: text})
	}

	if a.AppreciationRate > 0.08 {
		add(LevelCritical, "APPRECIATION_VERY_OPTIMISTIC", "appreciation_rate",
			"Sustained appreciation above 8% per year is historically rare")
	} else if a.AppreciationRate > 0.06 {
		add(LevelWarning, "APPRECIATION_ABOVE_BENCHMARK", "appreciation_rate",
			"Appreciation above typical Sydney benchmarks (3-5%); consider a more conservative estimate")
	}
	if a.RentalYield > 0.06 {
		add(LevelWarning, "YIELD_ABOVE_BENCHMARK", "rental_yield",
			"Rental yield is higher than typical Sydney returns (3-5%)")
	}
	if a.InterestRate < 0.05 {
		add(LevelWarning, "INTEREST_BELOW_MARKET", "interest_rate",
			"Interest rate is below current market rates; consider a higher rate for planning")
	}
	return msgs
}
