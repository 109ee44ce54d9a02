package main

import (
	"fmt"
	"regexp"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/ingest"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	// Compile filters early to report bad patterns before fetching.
	var urlFilter *politext.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &politext.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case ingest.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", event.URL)
		}
	}

	result, err := deps.Ingester.Ingest(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error ingesting: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%d skipped, %d failed, %s)\n",
		result.Saved, result.Skipped, result.Failed, ingest.FormatBytes(result.Bytes))

	return nil
}
