// Package htmltext converts parsed HTML into a readable plain-text
// approximation. Structure survives as whitespace and ASCII punctuation:
// paragraphs become blank lines, list items become bullets or numbers,
// data-table cells are pipe-separated, links carry their target in
// parentheses. The conversion is total: any tree the parser produces
// yields a result without error.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// Options controls optional conversion behavior.
type Options struct {
	// DisableLinks suppresses the " (href) " annotation after anchors.
	// The zero value keeps annotation on.
	DisableLinks bool
}

// FromString converts an HTML document to plain text. The second return
// is false when there is nothing to convert: empty input, an unparseable
// document, or a document without a body. Input containing neither '<'
// nor '&' carries no markup and is returned verbatim.
func FromString(input string, opt Options) (string, bool) {
	if input == "" {
		return "", false
	}
	if !strings.ContainsAny(input, "<&") {
		return input, true
	}
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return "", false
	}
	body := findBody(doc)
	if body == nil {
		return "", false
	}
	return FromNode(body, opt), true
}

// FromNode converts an already-parsed subtree to plain text.
func FromNode(n *html.Node, opt Options) string {
	if n == nil {
		return ""
	}
	out := &textBuffer{}
	convert(n, out, renderContext{links: !opt.DisableLinks})
	return finish(out.string())
}

// Title returns the document's /html/head/title text, whitespace-collapsed
// and trimmed, or "" when absent.
func Title(doc *html.Node) string {
	head := findFirst(doc, "head")
	if head == nil {
		return ""
	}
	t := findFirst(head, "title")
	if t == nil {
		return ""
	}
	return strings.TrimSpace(collapseWhitespace(rawText(t), false))
}

// findBody resolves the structural query /html/body: the body element
// directly under the document's html element, not just any element named
// body anywhere in the tree.
func findBody(doc *html.Node) *html.Node {
	root := childElement(doc, "html")
	if root == nil {
		return nil
	}
	return childElement(root, "body")
}

// childElement returns the first direct child element of n with the given
// name.
func childElement(n *html.Node, name string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, name) {
			return c
		}
	}
	return nil
}

// findFirst returns the first element named tag in a depth-first walk of n.
func findFirst(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, tag); res != nil {
			return res
		}
	}
	return nil
}

// finish applies the once-per-conversion cleanup: carriage returns become
// plain line breaks and surrounding whitespace is trimmed.
func finish(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}
