package politext

// Converter converts HTML to Markdown.
// It is an alternative output path for consumers that want
// structure-preserving markup instead of labeled text blocks.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should already have technical elements removed
	// (e.g., via goquery.Clean).
	Convert(html string) (string, error)
}
