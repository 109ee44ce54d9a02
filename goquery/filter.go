// Package goquery implements the politext extraction engine on top of
// goquery and x/net/html. It removes technical elements (navigation, ads,
// scripts, styles, comments), classifies ambiguous tables, and renders the
// surviving content as labeled plain-text blocks in document order.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// removedTags are tag names whose entire subtree is always dropped,
// regardless of content.
var removedTags = []string{
	"script", "style", "noscript", "meta", "link", "title",
	"head", "nav", "footer", "aside", "form", "input",
	"button", "select", "textarea", "iframe", "object", "embed",
}

// technicalClasses are class-attribute tokens that mark an element's
// subtree as navigation or chrome rather than content. Matching is by
// exact token, not substring.
var technicalClasses = []string{
	"nav", "navigation", "menu", "sidebar", "footer", "header",
	"advertisement", "ad", "social", "share", "breadcrumb",
	"pagination", "toolbar", "controls", "widget",
}

var (
	removedTagSet     = toSet(removedTags)
	technicalClassSet = toSet(technicalClasses)

	removedTagSelector     = strings.Join(removedTags, ", ")
	technicalClassSelector = "." + strings.Join(technicalClasses, ", .")
)

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// removeTechnical destructively detaches every removed-tag subtree, every
// comment node, and every subtree whose class tokens intersect the
// technical class set. Detached subtrees are never visited by extraction.
func removeTechnical(doc *goquery.Document) {
	doc.Find(removedTagSelector).Remove()
	doc.Find(technicalClassSelector).Remove()
	for _, root := range doc.Nodes {
		removeComments(root)
	}
}

// removeComments strips comment nodes in place.
func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

// classTokens returns the element's class attribute as a set of lowercase
// whitespace-separated tokens.
func classTokens(n *html.Node) map[string]bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return toSet(strings.Fields(strings.ToLower(attr.Val)))
		}
	}
	return nil
}

// isTechnical reports whether the element itself must be excluded: its tag
// is in the removed set or its class tokens intersect the technical set.
// The removal pass already detaches such subtrees; this re-check keeps the
// traversal safe against trees that skipped the pass.
func isTechnical(n *html.Node) bool {
	if removedTagSet[n.Data] {
		return true
	}
	for token := range classTokens(n) {
		if technicalClassSet[token] {
			return true
		}
	}
	return false
}
