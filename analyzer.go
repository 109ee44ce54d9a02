package politext

import "context"

// Analyzer answers natural-language questions about the stored corpus of
// extracted documents. This is the downstream analysis stage the labeled
// plain-text representation exists for.
type Analyzer interface {
	// Analyze runs the question against the stored documents and returns
	// the model's answer. Returns ENOTFOUND if no documents are stored.
	Analyze(ctx context.Context, question string) (string, error)
}
