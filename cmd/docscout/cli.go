package main

import (
	"context"
	"io"

	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/scrape"
	"github.com/fwojciec/docscout/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Results docscout.ResultService
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape practice websites and write doctor records as CSV"`
	List   ListCmd   `cmd:"" help:"List stored scrape results"`
	Export ExportCmd `cmd:"" help:"Export stored results as CSV without re-scraping"`
	Delete DeleteCmd `cmd:"" help:"Delete a stored result"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Input       string  `arg:"" help:"Website list file (one URL per line or comma-separated)"`
	Output      string  `short:"o" default:"doctors.csv" help:"Output CSV path"`
	Model       string  `short:"m" help:"Gemini model name"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent website limit"`
	Rate        float64 `short:"r" default:"1.0" help:"Requests per second per domain"`
	MaxPages    int     `default:"5" help:"Candidate pages visited per website"`
	NoLLM       bool    `help:"Use heuristic extraction only"`
	Verbose     bool    `short:"v" help:"Log fetches and extractions"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Website string `help:"Filter by website URL"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output  string `short:"o" default:"-" help:"Output CSV path (- for stdout)"`
	Website string `help:"Filter by website URL"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Result ID"`
}
