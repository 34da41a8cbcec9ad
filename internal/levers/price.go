package levers

const priceDecrease = 100000

type priceLever struct{}

func (l *priceLever) ID() string         { return "purchase_price" }
func (l *priceLever) Name() string       { return "Target Purchase Price" }
func (l *priceLever) Change() string     { return "-$100,000" }
func (l *priceLever) Controllable() bool { return true }

func (l *priceLever) Apply(in Inputs) Inputs {
	in.Assumptions.TargetPrice -= priceDecrease
	return in
}
