package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"roadmap-engine/internal/calc"
	"roadmap-engine/internal/report"
)

type sensitivityCmd struct {
	file     string
	variable string
	min      float64
	max      float64
	step     float64
}

func (*sensitivityCmd) Name() string     { return "sensitivity" }
func (*sensitivityCmd) Synopsis() string { return "sweep one assumption over a range" }
func (*sensitivityCmd) Usage() string {
	return `roadmap sensitivity -f <request.json> -var <name> -min <v> -max <v> -step <v>

  Re-runs the full projection at every grid point of one assumption,
  e.g. -var appreciation_rate -min 0.02 -max 0.08 -step 0.01.
`
}

func (c *sensitivityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
	f.StringVar(&c.variable, "var", "appreciation_rate", "Assumption to sweep")
	f.Float64Var(&c.min, "min", 0.02, "Lowest value")
	f.Float64Var(&c.max, "max", 0.08, "Highest value")
	f.Float64Var(&c.step, "step", 0.01, "Grid step")
}

func (c *sensitivityCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	req, err := loadRequest(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	a := req.ResolvedAssumptions()
	points, err := calc.SensitivitySweep(
		req.Properties, req.CashAllocated, a, req.TargetYears,
		req.AnnualIncomeGoal/12, c.variable,
		calc.SweepRange{Min: c.min, Max: c.max, Step: c.step},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Print(report.Sensitivity(c.variable, points))
	return subcommands.ExitSuccess
}
