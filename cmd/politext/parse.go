package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/goquery"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, source, err := readInput(deps, c.Path, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
		return err
	}

	var output string
	switch c.Format {
	case "markdown":
		cleaned, err := goquery.Clean(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
			return err
		}
		output, err = deps.Converter.Convert(cleaned)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
			return err
		}
	default:
		output, err = deps.Extractor.Extract(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintln(deps.Stdout, output)

	if c.Save {
		var title string
		if meta, err := deps.Metadata.Metadata(html); err == nil {
			title = meta.Title
		}

		doc := &politext.Document{
			SourceURL: source,
			Title:     title,
			Content:   output,
		}
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", politext.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved document %s\n", doc.ID)
	}

	return nil
}

// readInput resolves the HTML input for parse and meta: a URL fetch if
// url is set, a file if path is set, stdin otherwise. The second return
// value identifies the source for saved documents.
func readInput(deps *Dependencies, path, url string) (string, string, error) {
	if url != "" {
		html, err := deps.Fetcher.Fetch(deps.Ctx, url)
		if err != nil {
			return "", "", err
		}
		return html, url, nil
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return string(data), "file://" + path, nil
	}

	data, err := io.ReadAll(deps.Stdin)
	if err != nil {
		return "", "", err
	}
	return string(data), "stdin", nil
}
