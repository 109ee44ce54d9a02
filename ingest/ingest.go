// Package ingest orchestrates batch collection of political web pages.
// It coordinates sitemap discovery, rate-limited fetching, content
// extraction, duplicate detection, and storage.
package ingest

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/politext"
	"github.com/fwojciec/politext/bloom"
	"golang.org/x/sync/errgroup"
)

// Ingester orchestrates the ingestion of a site's pages into document
// storage.
type Ingester struct {
	Sitemaps    politext.SitemapService
	Fetcher     politext.Fetcher
	Extractor   politext.Extractor
	Metadata    politext.MetadataService
	Documents   politext.DocumentService
	RateLimiter politext.DomainLimiter
	Seen        *bloom.Filter
	Concurrency int
}

// Result holds the outcome of an ingestion run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	title    string
	content  string
	hash     string
	err      error
}

// Ingest discovers page URLs for the site, extracts their content, and
// saves the results as documents. The progress callback, if provided,
// receives events as ingestion proceeds.
func (ing *Ingester) Ingest(ctx context.Context, baseURL string, filter *politext.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := ing.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := ing.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, pageURL := range urls {
			i, pageURL := i, pageURL
			g.Go(func() error {
				result := ing.processURL(gctx, i, pageURL)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in document order.
	results := make([]pageResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Save documents serially; the Bloom filter is not safe for
	// concurrent use, and serial saves keep positions deterministic.
	var savedCount, skippedCount, totalBytes int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		if ing.Seen != nil && ing.Seen.Test(result.hash) {
			skippedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type: ProgressSkipped,
					URL:  result.url,
				})
			}
			continue
		}

		doc := &politext.Document{
			SourceURL:   result.url,
			Title:       result.title,
			Content:     result.content,
			ContentHash: result.hash,
			Position:    result.position,
		}

		if err := ing.Documents.CreateDocument(ctx, doc); err != nil {
			failedCount++
			continue
		}

		if ing.Seen != nil {
			ing.Seen.Add(result.hash)
		}

		savedCount++
		totalBytes += len(result.content)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:   savedCount,
		Skipped: skippedCount,
		Failed:  failedCount,
		Bytes:   totalBytes,
	}, nil
}

// processURL fetches and extracts a single page.
func (ing *Ingester) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{
		position: position,
		url:      pageURL,
	}

	if ing.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = fmt.Errorf("invalid URL: %w", err)
			return result
		}
		if err := ing.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	html, err := ing.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.err = err
		return result
	}

	content, err := ing.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	if ing.Metadata != nil {
		if meta, err := ing.Metadata.Metadata(html); err == nil {
			result.title = meta.Title
		}
	}

	result.content = content
	result.hash = computeHash(content)

	return result
}

// computeHash returns a hex-encoded xxhash of the content.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
