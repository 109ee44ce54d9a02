package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/politext"
	main "github.com/fwojciec/politext/cmd/politext"
	"github.com/fwojciec/politext/ingest"
	"github.com/fwojciec/politext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("ingests discovered pages and prints summary", func(t *testing.T) {
		t.Parallel()

		var saved []*politext.Document

		ingester := &ingest.Ingester{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, filter *politext.URLFilter) ([]string, error) {
					return []string{"https://example.com/a", "https://example.com/b"}, nil
				},
			},
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					return "<html>" + url + "</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (string, error) {
					return "Paragraph: extracted from " + html, nil
				},
			},
			Documents: &mock.DocumentService{
				CreateDocumentFn: func(_ context.Context, doc *politext.Document) error {
					saved = append(saved, doc)
					return nil
				},
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Ingester: ingester,
		}

		cmd := &main.IngestCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Len(t, saved, 2)
		assert.Contains(t, stdout.String(), "Found 2 URLs")
		assert.Contains(t, stdout.String(), "Saved 2 pages")
	})

	t.Run("rejects invalid filter patterns", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.IngestCmd{URL: "https://example.com", Filter: []string{"["}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("passes compiled filters to the ingester", func(t *testing.T) {
		t.Parallel()

		var gotFilter *politext.URLFilter
		ingester := &ingest.Ingester{
			Sitemaps: &mock.SitemapService{
				DiscoverURLsFn: func(_ context.Context, baseURL string, filter *politext.URLFilter) ([]string, error) {
					gotFilter = filter
					return []string{}, nil
				},
			},
		}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   &bytes.Buffer{},
			Ingester: ingester,
		}

		cmd := &main.IngestCmd{URL: "https://example.com", Filter: []string{`/news/`}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter)
		assert.True(t, gotFilter.Match("https://example.com/news/story"))
		assert.False(t, gotFilter.Match("https://example.com/about"))
	})
}
