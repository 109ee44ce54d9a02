package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/bloom"
	"github.com/fwojciec/politext/gemini"
	"github.com/fwojciec/politext/goquery"
	"github.com/fwojciec/politext/htmltomarkdown"
	politexthttp "github.com/fwojciec/politext/http"
	"github.com/fwojciec/politext/ingest"
	"github.com/fwojciec/politext/rod"
	politextslog "github.com/fwojciec/politext/slog"
	"github.com/fwojciec/politext/sqlite"
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
	DocumentService politext.DocumentService
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
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("politext"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'politext --help' to see available commands")
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

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set POLITEXT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Extractor = politextslog.NewLoggingExtractor(goquery.NewExtractor(), logger)
	deps.Metadata = goquery.NewMetadataService()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Sitemaps = politextslog.NewLoggingSitemapService(politexthttp.NewSitemapService(nil), logger)

	// Wire the fetcher only for commands that retrieve pages.
	render := (cmd == "parse" && cli.Parse.Render) || (cmd == "ingest" && cli.Ingest.Render)
	needsFetcher := cmd == "ingest" ||
		(cmd == "parse" && cli.Parse.URL != "") ||
		(cmd == "meta" && cli.Meta.URL != "")
	if needsFetcher {
		var fetcher politext.Fetcher
		if render {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		} else {
			fetcher = politexthttp.NewFetcher()
		}
		deps.Fetcher = politextslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
	}

	if cmd == "ingest" {
		deps.Ingester = &ingest.Ingester{
			Sitemaps:    deps.Sitemaps,
			Fetcher:     deps.Fetcher,
			Extractor:   deps.Extractor,
			Metadata:    deps.Metadata,
			Documents:   m.DocumentService,
			RateLimiter: ingest.NewDomainLimiter(cli.Ingest.RPS),
			Seen:        bloom.NewFilter(seenFilterSize, seenFilterFPRate),
			Concurrency: cli.Ingest.Concurrency,
		}
	}

	if cmd == "analyze" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyzer = gemini.NewAnalyzer(client, m.DocumentService)
	}

	return kongCtx.Run(deps)
}

// Bloom filter sizing for the ingest duplicate check.
const (
	seenFilterSize   = 10000
	seenFilterFPRate = 0.01
)

func defaultDBPath() string {
	if path := os.Getenv("POLITEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "politext.db"
	}
	dir := filepath.Join(home, ".politext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "politext.db")
}
