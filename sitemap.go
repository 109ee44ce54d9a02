package politext

import (
	"context"
	"regexp"
)

// URLFilter restricts discovered URLs by regular expression.
// A URL matches if it matches any Include pattern (or Include is empty)
// and matches no Exclude pattern.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter.
func (f *URLFilter) Match(url string) bool {
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds page URLs starting from the site's robots.txt
	// and sitemap index. Returns an empty slice (not nil) if no sitemaps
	// are found. A nil filter means no filtering.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}
