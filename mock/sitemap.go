package mock

import (
	"context"

	"github.com/fwojciec/politext"
)

var _ politext.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of politext.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *politext.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *politext.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
