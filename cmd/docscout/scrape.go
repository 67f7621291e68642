package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/csv"
	"github.com/fwojciec/docscout/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	input, err := os.Open(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open %q: %v\n", c.Input, err)
		return err
	}
	defer input.Close()

	websites, err := csv.ReadWebsites(input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}
	if len(websites) == 0 {
		fmt.Fprintln(deps.Stdout, "No websites in input.")
		return nil
	}

	output, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot create %q: %v\n", c.Output, err)
		return err
	}
	defer output.Close()

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d websites\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d doctors\n",
				event.Completed, event.Total, event.Website, event.People)
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %v\n",
				event.Completed, event.Total, event.Website, event.Error)
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, websites, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	writer := csv.NewWriter(output)
	for _, site := range result.Websites {
		if err := writer.WriteResult(site); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d doctors across %d websites (%d failed), wrote %s\n",
		result.People, len(result.Websites), result.Failed, c.Output)

	return nil
}
