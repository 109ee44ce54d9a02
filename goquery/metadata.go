package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/politext"
)

// Ensure MetadataService implements politext.MetadataService at compile time.
var _ politext.MetadataService = (*MetadataService)(nil)

// MetadataService extracts document metadata from the raw, pre-filter tree.
type MetadataService struct{}

// NewMetadataService creates a new MetadataService.
func NewMetadataService() *MetadataService {
	return &MetadataService{}
}

// Metadata returns the title and element counts for the document.
// Failures degrade to an empty Metadata rather than an error.
func (s *MetadataService) Metadata(rawHTML string) (*politext.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &politext.Metadata{}, nil
	}

	return &politext.Metadata{
		Title:      documentTitle(doc),
		Headings:   doc.Find("h1, h2, h3, h4, h5, h6").Length(),
		Paragraphs: doc.Find("p").Length(),
		Lists:      doc.Find("ul, ol").Length(),
		Tables:     doc.Find("table").Length(),
		Links:      doc.Find("a").Length(),
	}, nil
}

// documentTitle prefers <title>, then the first <h1>.
func documentTitle(doc *goquery.Document) string {
	if title := collapse(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := collapse(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return "No title found"
}
