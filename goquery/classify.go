package goquery

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// tableClass is the outcome of table classification.
type tableClass int

const (
	tableContent tableClass = iota
	tableTechnical
)

// Keyword vocabularies for table classification. Class-token checks use
// exact token membership; text checks use substring containment.
var (
	contentTableIndicators = []string{
		"data", "results", "statistics", "stats", "comparison",
		"schedule", "timeline", "budget", "financial", "economic",
	}
	technicalTableIndicators = []string{
		"nav", "menu", "layout", "grid", "controls", "buttons",
	}
	navigationKeywords = []string{
		"home", "about", "contact", "menu", "navigation",
	}
)

// numberPattern matches number tokens: digits with an optional decimal
// separator and an optional trailing % or $.
var numberPattern = regexp.MustCompile(`\d+[.,]?\d*[%$]?`)

// numberCountThreshold is how many number tokens a table must exceed to be
// treated as data. Tunable, not a protocol requirement.
const numberCountThreshold = 5

// classifyTable decides whether a <table> holds tabular content (keep) or
// layout/navigation markup (discard). Ambiguous tables default to content:
// dropping a genuine data table costs more than keeping a stray layout
// table for this domain.
func classifyTable(n *html.Node) tableClass {
	tokens := classTokens(n)
	for _, kw := range contentTableIndicators {
		if tokens[kw] {
			return tableContent
		}
	}
	for _, kw := range technicalTableIndicators {
		if tokens[kw] {
			return tableTechnical
		}
	}

	text := strings.ToLower(fullText(n))

	if len(numberPattern.FindAllString(text, -1)) > numberCountThreshold {
		return tableContent
	}
	for _, kw := range contentTableIndicators {
		if strings.Contains(text, kw) {
			return tableContent
		}
	}

	for _, kw := range navigationKeywords {
		if strings.Contains(text, kw) {
			return tableTechnical
		}
	}

	return tableContent
}
