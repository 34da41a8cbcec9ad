package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"roadmap-engine/internal/report"
)

type strategyCmd struct {
	file string
}

func (*strategyCmd) Name() string     { return "strategy" }
func (*strategyCmd) Synopsis() string { return "display the strategic sale plan at the horizon" }
func (*strategyCmd) Usage() string {
	return `roadmap strategy -f <request.json>

  Prints which properties to keep debt-free, which to sell, and the
  resulting after-tax income.
`
}

func (c *strategyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
}

func (c *strategyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	resp, err := run(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(report.SaleScenario(resp.CalculationResult.SaleScenario))
	return subcommands.ExitSuccess
}
