package mock

import "github.com/fwojciec/politext"

var _ politext.Converter = (*Converter)(nil)

// Converter is a mock implementation of politext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
