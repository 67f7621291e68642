package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/csv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := docscout.ResultFilter{}
	if c.Website != "" {
		filter.Website = &c.Website
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot create %q: %v\n", c.Output, err)
			return err
		}
		defer f.Close()
		out = f
	}

	writer := csv.NewWriter(out)
	for _, r := range results {
		if err := writer.WriteResult(r); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	return nil
}
