// Package trafilatura provides a statistical alternative to the
// rule-based goquery extraction engine. It yields unlabeled plain text,
// so structural context (heading levels, list ordering, column names) is
// not preserved; use it when recall matters more than structure.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/politext"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements politext.Extractor at compile time.
var _ politext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", politext.Errorf(politext.EEMPTY, "HTML content is empty")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", politext.Errorf(politext.EPARSE, "failed to parse HTML: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", politext.Errorf(politext.ENOCONTENT, "no meaningful content found after parsing")
	}

	return text, nil
}
