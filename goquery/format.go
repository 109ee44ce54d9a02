package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// formatBlock renders one structured block-level element as a labeled text
// block. Returns "" if the element carries no usable content.
func formatBlock(n *html.Node) string {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return formatHeading(n)
	case "p":
		return formatParagraph(n)
	case "ul", "ol":
		return formatList(n)
	case "table":
		return formatTable(n)
	case "blockquote":
		return formatQuote(n)
	}
	return ""
}

// formatHeading labels a heading with its numeric level, taken literally
// from the tag name (<h3> -> "Level 3").
func formatHeading(n *html.Node) string {
	text := collapseText(n)
	if text == "" {
		return ""
	}
	level := int(n.Data[1] - '0')
	return fmt.Sprintf("Section (Level %d): %s", level, text)
}

// formatParagraph emits the paragraph's text unlabeled. Paragraphs carry
// no structural label, so the generic minimum-length threshold applies.
func formatParagraph(n *html.Node) string {
	text := collapseText(n)
	if utf8.RuneCountInString(text) < minTextLen {
		return ""
	}
	return text
}

// formatList enumerates the direct <li> children of a <ul> or <ol>.
// Items with empty text are skipped; for ordered lists the index reflects
// the item's document position, so skipped items leave numbering gaps.
func formatList(n *html.Node) string {
	numbered := n.Data == "ol"

	var items []string
	position := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		position++
		text := collapseText(c)
		if text == "" {
			continue
		}
		if numbered {
			items = append(items, fmt.Sprintf("%d. %s", position, text))
		} else {
			items = append(items, "• "+text)
		}
	}

	if len(items) == 0 {
		return ""
	}

	label := "List (bulleted):"
	if numbered {
		label = "List (numbered):"
	}
	return label + "\n" + strings.Join(items, "\n")
}

// formatQuote labels a blockquote's full text.
func formatQuote(n *html.Node) string {
	text := collapseText(n)
	if text == "" {
		return ""
	}
	return "Quote: " + text
}

// formatTable renders a content table as "Table: {title}" followed by one
// "{column}: {value} | ..." line per data row. Technical tables emit
// nothing.
func formatTable(n *html.Node) string {
	if classifyTable(n) == tableTechnical {
		return ""
	}

	sel := wrapNode(n)

	title := tableTitle(n, sel)

	rows := sel.Find("tr")
	if rows.Length() == 0 {
		return ""
	}

	// The first row is the header if it holds any <th> cell or sits
	// inside a <thead>.
	first := rows.First()
	isHeader := first.Find("th").Length() > 0 || hasAncestor(first.Get(0), "thead")

	var columns []string
	dataRows := rows
	if isHeader {
		first.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			if text := collapse(cell.Text()); text != "" {
				columns = append(columns, text)
			}
		})
		dataRows = rows.Slice(1, rows.Length())
	}

	// No header: generate ColumnN names sized to the first data row.
	if len(columns) == 0 && dataRows.Length() > 0 {
		n := dataRows.First().Find("td, th").Length()
		for i := 1; i <= n; i++ {
			columns = append(columns, fmt.Sprintf("Column%d", i))
		}
	}
	if len(columns) == 0 {
		return ""
	}

	var lines []string
	dataRows.Each(func(_ int, row *goquery.Selection) {
		var pairs []string
		row.Find("td, th").Each(func(i int, cell *goquery.Selection) {
			if i < len(columns) {
				pairs = append(pairs, columns[i]+": "+collapse(cell.Text()))
			}
		})
		if len(pairs) > 0 {
			lines = append(lines, strings.Join(pairs, " | "))
		}
	})

	if len(lines) == 0 {
		return ""
	}
	return "Table: " + title + "\n" + strings.Join(lines, "\n")
}

// tableTitle resolves a table's title from its caption, then its title or
// data-title attribute, then the literal "Data".
func tableTitle(n *html.Node, sel *goquery.Selection) string {
	if caption := sel.Find("caption").First(); caption.Length() > 0 {
		if text := collapse(caption.Text()); text != "" {
			return text
		}
	}
	for _, key := range []string{"title", "data-title"} {
		if val, ok := sel.Attr(key); ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return "Data"
}

// hasAncestor reports whether any ancestor element has the given tag.
func hasAncestor(n *html.Node, tag string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return true
		}
	}
	return false
}

// wrapNode exposes a bare node as a single-element goquery selection.
func wrapNode(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// fullText concatenates the text of all descendant text nodes without
// altering whitespace.
func fullText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// collapseText returns the element's full text with runs of whitespace
// collapsed to single spaces and the ends trimmed.
func collapseText(n *html.Node) string {
	return collapse(fullText(n))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
