package main

import (
	"fmt"

	"github.com/fwojciec/docscout"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docscout.ResultFilter{}
	if c.Website != "" {
		filter.Website = &c.Website
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found. Use 'docscout scrape' to create some.")
		return nil
	}

	for _, r := range results {
		note := ""
		if r.ErrNote != "" {
			note = "  ERROR: " + r.ErrNote
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d doctors%s\n",
			r.ID, r.ScrapedAt.Format("2006-01-02 15:04"), r.Website, len(r.People), note)
	}

	return nil
}
