package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"roadmap-engine/internal/report"
)

type leversCmd struct {
	file string
}

func (*leversCmd) Name() string     { return "levers" }
func (*leversCmd) Synopsis() string { return "rank the levers that most change the outcome" }
func (*leversCmd) Usage() string {
	return `roadmap levers -f <request.json>

  Re-runs the projection under standard single-variable changes and
  ranks them by income impact.
`
}

func (c *leversCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
}

func (c *leversCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	resp, err := run(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(report.LeversAnalysis(resp.CalculationResult.LeversAnalysis))
	return subcommands.ExitSuccess
}
