package mock

import "github.com/fwojciec/politext"

var _ politext.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of politext.MetadataService.
type MetadataService struct {
	MetadataFn func(html string) (*politext.Metadata, error)
}

func (s *MetadataService) Metadata(html string) (*politext.Metadata, error) {
	return s.MetadataFn(html)
}
