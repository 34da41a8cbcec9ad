// Command roadmap runs portfolio roadmap calculations from the terminal.
// Inputs are the same JSON documents the HTTP surface accepts.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(&projectCmd{}, "analysis")
	commander.Register(&strategyCmd{}, "analysis")
	commander.Register(&gapCmd{}, "analysis")
	commander.Register(&leversCmd{}, "analysis")
	commander.Register(&sensitivityCmd{}, "analysis")
	commander.Register(&scenariosCmd{}, "storage")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
