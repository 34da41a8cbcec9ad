package levers

const appreciationIncrease = 0.01

type appreciationLever struct{}

func (l *appreciationLever) ID() string         { return "appreciation" }
func (l *appreciationLever) Name() string       { return "Capital Growth Rate" }
func (l *appreciationLever) Change() string     { return "+1%" }
func (l *appreciationLever) Controllable() bool { return false }

func (l *appreciationLever) Apply(in Inputs) Inputs {
	in.Assumptions.AppreciationRate += appreciationIncrease
	return in
}
