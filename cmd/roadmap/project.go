package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"roadmap-engine/internal/report"
)

type projectCmd struct {
	file string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the year-by-year portfolio projection" }
func (*projectCmd) Usage() string {
	return `roadmap project -f <request.json>

  Runs the acquisition projection and prints the yearly roadmap.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
}

func (c *projectCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	resp, err := run(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(report.Projection(resp.CalculationResult.Projection))
	return subcommands.ExitSuccess
}
