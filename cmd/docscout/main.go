package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docscout"
	"github.com/fwojciec/docscout/extract"
	"github.com/fwojciec/docscout/gemini"
	"github.com/fwojciec/docscout/goquery"
	dochttp "github.com/fwojciec/docscout/http"
	"github.com/fwojciec/docscout/resty"
	"github.com/fwojciec/docscout/scrape"
	docslog "github.com/fwojciec/docscout/slog"
	"github.com/fwojciec/docscout/sqlite"
	"github.com/fwojciec/docscout/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ResultService docscout.ResultService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ResultService = sqlite.NewResultService(m.DB)
	deps.DB = m.DB
	deps.Results = m.ResultService

	if cmd == "scrape" {
		scraper, err := m.buildScraper(ctx, &cli.Scrape, stderr)
		if err != nil {
			return err
		}
		defer scraper.Fetcher.Close()
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

// buildScraper wires the scraping pipeline from the command's flags.
// Without a GEMINI_API_KEY (or with --no-llm) extraction runs heuristic
// only.
func (m *Main) buildScraper(ctx context.Context, cmd *ScrapeCmd, stderr io.Writer) (*scrape.Scraper, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cmd.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var fetcher docscout.Fetcher = resty.NewFetcher()
	if cmd.Verbose {
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}

	heuristic := docscout.PersonExtractor(extract.NewHeuristic())
	var primary docscout.PersonExtractor

	if !cmd.NoLLM {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set, falling back to heuristic extraction. Get a key at https://aistudio.google.com/apikey")
		} else {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			var copts []gemini.Option
			if cmd.Model != "" {
				copts = append(copts, gemini.WithModel(cmd.Model))
			}
			primary = extract.NewLLM(gemini.NewCompleter(client, copts...))
			if cmd.Verbose {
				primary = docslog.NewLoggingExtractor(primary, "llm", logger)
				heuristic = docslog.NewLoggingExtractor(heuristic, "heuristic", logger)
			}
		}
	}

	return &scrape.Scraper{
		Fetcher:            fetcher,
		Normalizer:         goquery.NewNormalizer(),
		FallbackNormalizer: trafilatura.NewNormalizer(),
		Primary:            primary,
		Fallback:           heuristic,
		Finder:             goquery.NewFinder(),
		Sitemaps:           dochttp.NewSitemapService(&http.Client{Timeout: 10 * time.Second}),
		RateLimiter:        scrape.NewDomainLimiter(cmd.Rate),
		Results:            m.ResultService,
		MaxCandidatePages:  cmd.MaxPages,
		Concurrency:        cmd.Concurrency,
	}, nil
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docscout.db"
	}
	dir := filepath.Join(home, ".docscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docscout.db")
}
