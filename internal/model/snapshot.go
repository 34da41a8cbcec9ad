package model

// PortfolioTotals aggregates one year's property list. ExtractableEquity and
// AvailableFunds are captured before any purchase that year; AccumulatedCash
// is the balance after purchases and the year's cash flow.
type PortfolioTotals struct {
	TotalValue        float64 `json:"total_value"`
	TotalEquity       float64 `json:"total_equity"`
	TotalDebt         float64 `json:"total_debt"`
	TotalRent         float64 `json:"total_rent"`
	PropertyCount     int     `json:"property_count"`
	ExtractableEquity float64 `json:"extractable_equity"`
	AvailableFunds    float64 `json:"available_funds"`
	AccumulatedCash   float64 `json:"accumulated_cash"`
}

// YearEvents records what the acquisition step did this year.
type YearEvents struct {
	CanRefinance          bool    `json:"can_refinance"`
	PropertiesPurchased   int     `json:"properties_purchased"`
	RefinanceAmount       float64 `json:"refinance_amount"`
	CashUsed              float64 `json:"cash_used"`
	NewPropertiesPossible int     `json:"new_properties_possible"`
}

// YearSnapshot is one projection tick: the full property list as of that
// year, including any acquired during it.
type YearSnapshot struct {
	Year       int             `json:"year"`
	Properties []PropertyYear  `json:"properties"`
	Totals     PortfolioTotals `json:"totals"`
	Events     YearEvents      `json:"events"`
}
