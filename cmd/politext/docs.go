package main

import (
	"fmt"

	"github.com/fwojciec/politext"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	filter := politext.DocumentFilter{SortBy: politext.SortByPosition}
	if c.Source != "" {
		filter.SourceURL = &c.Source
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents stored. Run 'politext ingest <url>' or 'politext parse --save' first.\n")
		return politext.Errorf(politext.ENOTFOUND, "no documents stored")
	}

	if c.Full {
		// Print full formatted content (same as what analyze sends to the LLM)
		fmt.Fprintln(deps.Stdout, politext.FormatDocuments(docs))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents (%d total):\n\n", len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s  [%s]\n", i+1, title, doc.SourceURL, doc.ID)
	}

	return nil
}
