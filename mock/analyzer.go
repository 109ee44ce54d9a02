package mock

import (
	"context"

	"github.com/fwojciec/politext"
)

var _ politext.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of politext.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, question string) (string, error)
}

func (a *Analyzer) Analyze(ctx context.Context, question string) (string, error) {
	return a.AnalyzeFn(ctx, question)
}
