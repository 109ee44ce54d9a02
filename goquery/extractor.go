package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/politext"
)

// Ensure Extractor implements politext.Extractor at compile time.
var _ politext.Extractor = (*Extractor)(nil)

// Extractor converts raw HTML into labeled plain-text blocks using the
// rule-based extraction engine. It is stateless and safe for concurrent
// use; every call parses and owns its own tree.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML, removes technical elements and renders the
// remaining content as labeled blocks joined by blank lines.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}

	removeTechnical(doc)

	root := contentRoot(doc.Nodes[0])
	if root == nil {
		return "", politext.Errorf(politext.ENOCONTENT, "no meaningful content found after parsing")
	}

	result := strings.Join(extractBlocks(root), "\n\n")
	if strings.TrimSpace(result) == "" {
		return "", politext.Errorf(politext.ENOCONTENT, "no meaningful content found after parsing")
	}

	return result, nil
}

// Clean parses the HTML, removes technical elements and returns the
// filtered markup. It is the input side of the Markdown conversion path.
func Clean(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}

	removeTechnical(doc)

	cleaned, err := doc.Html()
	if err != nil {
		return "", politext.Errorf(politext.EINTERNAL, "failed to render filtered HTML: %v", err)
	}
	return cleaned, nil
}

// parse builds the DOM tree, mapping the extraction failure taxonomy:
// EEMPTY for blank input, EPARSE when no tree can be built.
func parse(rawHTML string) (*goquery.Document, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, politext.Errorf(politext.EEMPTY, "HTML content is empty")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, politext.Errorf(politext.EPARSE, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
