package levers

const yearsIncrease = 5

type timelineLever struct{}

func (l *timelineLever) ID() string         { return "timeline" }
func (l *timelineLever) Name() string       { return "Investment Timeline" }
func (l *timelineLever) Change() string     { return "+5 years" }
func (l *timelineLever) Controllable() bool { return true }

func (l *timelineLever) Apply(in Inputs) Inputs {
	in.TargetYears += yearsIncrease
	return in
}
