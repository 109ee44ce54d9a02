package main

import (
	"context"
	"io"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/ingest"
	"github.com/fwojciec/politext/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Extractor politext.Extractor
	Metadata  politext.MetadataService
	Converter politext.Converter
	Fetcher   politext.Fetcher
	Documents politext.DocumentService
	Sitemaps  politext.SitemapService
	Ingester  *ingest.Ingester
	Analyzer  politext.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Parse   ParseCmd   `cmd:"" help:"Extract labeled plain text from an HTML file or URL"`
	Meta    MetaCmd    `cmd:"" help:"Show metadata for an HTML document"`
	Ingest  IngestCmd  `cmd:"" help:"Discover, extract, and store a site's pages"`
	Docs    DocsCmd    `cmd:"" help:"List stored documents"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored document"`
	Analyze AnalyzeCmd `cmd:"" help:"Ask a question about the stored documents"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Path   string `arg:"" optional:"" help:"HTML file path (reads stdin if omitted)"`
	URL    string `short:"u" help:"Fetch the page from a URL instead of a file"`
	Render bool   `short:"r" help:"Render the page with a headless browser before extraction"`
	Format string `short:"f" default:"text" enum:"text,markdown" help:"Output format (text or markdown)"`
	Save   bool   `short:"s" help:"Save the extracted document to the database"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	Path string `arg:"" optional:"" help:"HTML file path (reads stdin if omitted)"`
	URL  string `short:"u" help:"Fetch the page from a URL instead of a file"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL         string   `arg:"" help:"Site URL to ingest"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Render      bool     `short:"r" help:"Render pages with a headless browser"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Max requests per second per domain"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Source string `help:"Filter by source URL"`
	Full   bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Question string `arg:"" help:"Question to ask about the stored documents"`
}
