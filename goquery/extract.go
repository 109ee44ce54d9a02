package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/net/html"
)

// blockTags terminate recursive descent with structured formatting.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "ul": true, "ol": true, "table": true, "blockquote": true,
}

// containerTags recurse further looking for nested block content.
var containerTags = map[string]bool{
	"div": true, "section": true, "article": true, "main": true,
	"header": true, "aside": true, "span": true, "figure": true,
	"figcaption": true, "details": true, "summary": true,
}

// minTextLen is the minimum trimmed length (in runes) for unlabeled text
// emission. Labeled formatters (heading, list, table, quote) are exempt.
const minTextLen = 10

// walker performs the pre-order, depth-first extraction traversal.
// Each element is numbered by an arena pass at tree-build time; the
// visited set is a bitset over those indices, so an element contributes
// at most one block even under re-entrant visits.
type walker struct {
	index   map[*html.Node]uint
	visited *bitset.BitSet
	blocks  []string
}

// extractBlocks walks the subtree rooted at root and returns the ordered
// sequence of labeled text blocks.
func extractBlocks(root *html.Node) []string {
	w := &walker{index: make(map[*html.Node]uint)}

	var count uint
	var number func(*html.Node)
	number = func(n *html.Node) {
		if n.Type == html.ElementNode {
			w.index[n] = count
			count++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			number(c)
		}
	}
	number(root)

	w.visited = bitset.New(count)
	w.visit(root)
	return w.blocks
}

func (w *walker) visit(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}
	idx := w.index[n]
	if w.visited.Test(idx) {
		return
	}
	if isTechnical(n) {
		return
	}
	// Mark before emitting so re-entrant visits cannot duplicate a block.
	w.visited.Set(idx)

	if blockTags[n.Data] {
		if block := formatBlock(n); block != "" {
			w.blocks = append(w.blocks, block)
		}
		// Children are already captured by the formatter.
		return
	}

	// Container or unknown tag: collect direct text and recurse into
	// block-level children in document order.
	var direct []string
	hasBlockChild := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				direct = append(direct, text)
			}
		case html.ElementNode:
			if blockTags[c.Data] || containerTags[c.Data] {
				hasBlockChild = true
				w.visit(c)
			}
		}
	}
	if hasBlockChild {
		// The container's own text is never emitted alongside child
		// blocks.
		return
	}

	if text := strings.Join(direct, " "); utf8.RuneCountInString(text) >= minTextLen {
		w.blocks = append(w.blocks, text)
	} else if total := collapseText(n); utf8.RuneCountInString(total) >= minTextLen {
		w.blocks = append(w.blocks, total)
	}
}

// contentRoot narrows the traversal scope: prefer <main>, else <article>,
// inside <body> (or the whole tree when there is no body).
// Returns nil if the tree holds no elements at all.
func contentRoot(root *html.Node) *html.Node {
	scope := findFirst(root, "body")
	if scope == nil {
		scope = firstElement(root)
	}
	if scope == nil {
		return nil
	}
	if main := findFirst(scope, "main"); main != nil {
		return main
	}
	if article := findFirst(scope, "article"); article != nil {
		return article
	}
	return scope
}

// firstElement returns n itself if it is an element, else its first
// element descendant in pre-order.
func firstElement(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c); found != nil {
			return found
		}
	}
	return nil
}

// findFirst returns the first element with the given tag in pre-order, or
// nil.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
