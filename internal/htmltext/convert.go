package htmltext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// horizontalRule is the fixed rule emitted for <hr>.
var horizontalRule = strings.Repeat("-", 31)

// absoluteURL matches scheme://… targets; only those are worth annotating.
var absoluteURL = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// convert walks n depth-first and appends its rendering to out. ctx is the
// formatting state inherited from ancestors; out is shared by the whole call
// tree and only ever grows, apart from trailing-space trims around breaks.
func convert(n *html.Node, out *textBuffer, ctx renderContext) {
	switch n.Type {
	case html.TextNode:
		writeText(out, n.Data, ctx)
		return
	case html.ElementNode, html.DocumentNode:
		// handled below
	default:
		// comments, doctypes
		return
	}

	name := strings.ToLower(n.Data)
	if ignoredTags[name] {
		return
	}
	if name == "plaintext" {
		// Historical non-standard element: content is dumped verbatim.
		out.writeString(rawText(n))
		return
	}

	if paragraphTags[name] {
		out.paragraphBreak()
	} else if blockTags[name] {
		out.blockBreak()
	}

	if name == "li" {
		writeItemMarker(out, ctx)
	}
	if name == "tr" && inDataTable(n) {
		out.writeString("| ")
	}

	start := out.len()
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			convert(c, out, deriveContext(strings.ToLower(c.Data), ctx))
		} else {
			convert(c, out, ctx)
		}
	}

	switch name {
	case "br":
		out.lineBreak()
	case "hr":
		out.blockBreak()
		out.writeString(horizontalRule)
		out.writeByte('\n')
	case "td", "th":
		writeCellSeparator(out, n)
	case "a":
		if ctx.links {
			writeLinkTarget(out, n, start)
		}
	}

	if paragraphTags[name] {
		out.paragraphBreak()
	} else if blockTags[name] {
		out.blockBreak()
	}
}

// writeText appends a text node's payload. Outside preformatted regions,
// whitespace runs collapse to one space, and a leading run is dropped when
// the output already ends at a boundary.
func writeText(out *textBuffer, s string, ctx renderContext) {
	if ctx.pre {
		out.writeString(s)
		return
	}
	out.writeString(collapseWhitespace(s, out.endsInSpace()))
}

// collapseWhitespace rewrites runs of spaces, tabs, and line breaks as a
// single space. When afterSpace is true, a leading run produces nothing.
func collapseWhitespace(s string, afterSpace bool) string {
	var b strings.Builder
	lastSpace := afterSpace
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}
	return b.String()
}

// writeItemMarker emits the decoration for a list item: one asterisk per
// nesting level for bullets, or the list's shared counter for numbers.
func writeItemMarker(out *textBuffer, ctx renderContext) {
	switch ctx.kind {
	case listUnordered:
		out.writeString(strings.Repeat("*", ctx.ulDepth) + " ")
	case listOrdered:
		if ctx.counter != nil {
			out.writeString(ctx.counter.next() + ". ")
		}
	}
}

// writeCellSeparator closes a table cell. Cells in a data table are joined
// with " | "; layout tables make do with a single space. The row's last cell
// needs no separator.
func writeCellSeparator(out *textBuffer, n *html.Node) {
	if !hasFollowingCell(n) {
		return
	}
	if inDataTable(n) {
		out.writeString(" | ")
		return
	}
	out.writeByte(' ')
}

// writeLinkTarget appends " (href) " after an anchor's rendered text. start
// is the buffer position where that text began. Anchors whose visible text
// is empty, or merely echoes the target with or without its scheme, stay
// unannotated.
func writeLinkTarget(out *textBuffer, n *html.Node, start int) {
	href := strings.TrimSpace(attrValue(n, "href"))
	scheme := absoluteURL.FindString(href)
	if scheme == "" {
		return
	}
	visible := strings.TrimSpace(collapseWhitespace(out.tail(start), false))
	if visible == "" || visible == href || visible == href[len(scheme):] {
		return
	}
	out.writeString(" (" + href + ") ")
}

// inDataTable reports whether the nearest enclosing table of n is a data
// table, i.e. its border attribute parses to an integer above zero. Missing
// and non-numeric borders count as zero.
func inDataTable(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && strings.EqualFold(p.Data, "table") {
			border, err := strconv.Atoi(strings.TrimSpace(attrValue(p, "border")))
			return err == nil && border > 0
		}
	}
	return false
}

// hasFollowingCell reports whether another cell follows n within its row.
func hasFollowingCell(n *html.Node) bool {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(s.Data) {
		case "td", "th":
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "" when absent.
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// rawText concatenates every text node under n without any normalization.
func rawText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return b.String()
}
