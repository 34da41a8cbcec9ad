package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"roadmap-engine/internal/report"
)

type gapCmd struct {
	file string
}

func (*gapCmd) Name() string     { return "gap" }
func (*gapCmd) Synopsis() string { return "display options for closing the income shortfall" }
func (*gapCmd) Usage() string {
	return `roadmap gap -f <request.json>

  Prints the gap analysis: more properties, more cash, more time, or a
  lower goal.
`
}

func (c *gapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
}

func (c *gapCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	resp, err := run(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(report.GapAnalysis(resp.CalculationResult.GapAnalysis))
	return subcommands.ExitSuccess
}
