package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/google/subcommands"

	"roadmap-engine/internal/scenario"
)

type scenariosCmd struct {
	store    string
	saveAs   string
	file     string
	deleteID string
	diff     string
}

func (*scenariosCmd) Name() string     { return "scenarios" }
func (*scenariosCmd) Synopsis() string { return "list, save, delete, or compare saved scenarios" }
func (*scenariosCmd) Usage() string {
	return `roadmap scenarios [-store <path>] [-save <name> -f <request.json>] [-delete <id|name>] [-diff <a>:<b>]

  With no action flags, lists the saved scenarios. -diff prints an
  RFC 6902 patch between two scenarios' inputs.
`
}

func (c *scenariosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "store", "scenarios.json", "Scenario store file")
	f.StringVar(&c.saveAs, "save", "", "Save the request file under this name")
	f.StringVar(&c.file, "f", "-", "Request file (JSON), or - for stdin")
	f.StringVar(&c.deleteID, "delete", "", "Delete a scenario by id or name")
	f.StringVar(&c.diff, "diff", "", "Compare two scenarios, as <a>:<b>")
}

func (c *scenariosCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	store := scenario.New(c.store)

	var err error
	switch {
	case c.saveAs != "":
		err = c.save(store)
	case c.deleteID != "":
		err = store.Delete(c.deleteID)
	case c.diff != "":
		err = c.compare(store)
	default:
		err = c.list(store)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *scenariosCmd) list(store *scenario.Store) error {
	list, err := store.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No saved scenarios.")
		return nil
	}
	for _, sc := range list {
		fmt.Printf("%s  %s  (%s)\n", sc.ID, sc.Name, sc.CreatedAt)
	}
	return nil
}

func (c *scenariosCmd) save(store *scenario.Store) error {
	req, err := loadRequest(c.file)
	if err != nil {
		return err
	}
	saved, err := store.Put(c.saveAs, *req)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %q as %s\n", saved.Name, saved.ID)
	return nil
}

func (c *scenariosCmd) compare(store *scenario.Store) error {
	var a, b string
	for i := 0; i < len(c.diff); i++ {
		if c.diff[i] == ':' {
			a, b = c.diff[:i], c.diff[i+1:]
			break
		}
	}
	if a == "" || b == "" {
		return fmt.Errorf("expected -diff <a>:<b>")
	}

	sa, err := store.Get(a)
	if err != nil {
		return err
	}
	sb, err := store.Get(b)
	if err != nil {
		return err
	}
	patch, err := scenario.Diff(sa, sb)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(patch, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
