package politext

// Extractor converts raw HTML into labeled plain-text blocks.
type Extractor interface {
	// Extract parses the HTML, removes technical elements (navigation,
	// ads, scripts, styles, comments) and renders the remaining content
	// as labeled blocks joined by blank lines.
	//
	// Returns EEMPTY if the input is empty or whitespace-only, EPARSE if
	// the HTML cannot be parsed into a tree at all, and ENOCONTENT if
	// nothing meaningful survives extraction.
	Extract(html string) (string, error)
}

// Metadata describes a raw HTML document before any filtering.
// Counts are taken over the full pre-filter tree.
type Metadata struct {
	Title      string `json:"title"`
	Headings   int    `json:"headingsCount"`
	Paragraphs int    `json:"paragraphsCount"`
	Lists      int    `json:"listsCount"`
	Tables     int    `json:"tablesCount"`
	Links      int    `json:"linksCount"`
}

// MetadataService extracts document metadata for analysis context.
type MetadataService interface {
	// Metadata returns the title and element counts for the document.
	// Failures are non-fatal: implementations degrade to an empty
	// Metadata rather than returning an error.
	Metadata(html string) (*Metadata, error)
}
