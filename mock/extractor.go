package mock

import "github.com/fwojciec/politext"

var _ politext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of politext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
