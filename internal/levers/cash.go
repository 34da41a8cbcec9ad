package levers

const cashIncrease = 100000

type cashLever struct{}

func (l *cashLever) ID() string         { return "cash" }
func (l *cashLever) Name() string       { return "Starting Cash" }
func (l *cashLever) Change() string     { return "+$100,000" }
func (l *cashLever) Controllable() bool { return true }

func (l *cashLever) Apply(in Inputs) Inputs {
	in.CashAllocated += cashIncrease
	return in
}
