package levers

const yieldIncrease = 0.005

type yieldLever struct{}

func (l *yieldLever) ID() string         { return "yield" }
func (l *yieldLever) Name() string       { return "Rental Yield" }
func (l *yieldLever) Change() string     { return "+0.5%" }
func (l *yieldLever) Controllable() bool { return false }

func (l *yieldLever) Apply(in Inputs) Inputs {
	in.Assumptions.RentalYield += yieldIncrease
	return in
}
