package htmltext

import "strconv"

// listKind identifies the innermost list an element renders under.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// renderContext is the formatting state a node inherits from its ancestors.
// Contexts are derived by value copy, so a change made for one subtree can
// never leak into a sibling. The one deliberate exception is counter: every
// direct item of an ordered list aliases the same counter, which is how
// consecutive items number themselves without recomputation.
type renderContext struct {
	pre   bool
	links bool
	kind  listKind
	// Depths count enclosing lists of each kind. Zero means none.
	ulDepth int
	olDepth int
	counter *itemCounter
}

// deriveContext returns the context the children of an element named name
// inherit. Elements that are not lists and not preformatted pass the context
// through unchanged.
func deriveContext(name string, ctx renderContext) renderContext {
	switch name {
	case "ul":
		ctx.kind = listUnordered
		ctx.ulDepth++
	case "ol":
		ctx.kind = listOrdered
		ctx.olDepth++
		ctx.counter = newItemCounter(ctx.olDepth)
	case "pre":
		ctx.pre = true
	}
	return ctx
}

// itemCounter numbers the direct items of one ordered list. Nested lists
// always allocate their own counter; sharing one across list instances would
// bleed numbering between lists.
type itemCounter struct {
	label string
}

// newItemCounter seeds the numbering style for a list at the given nesting
// depth: numerals on the first level, letters on the second, alternating
// from there down.
func newItemCounter(depth int) *itemCounter {
	if depth%2 == 1 {
		return &itemCounter{label: "1"}
	}
	return &itemCounter{label: "a"}
}

// next returns the current label and advances the counter.
func (c *itemCounter) next() string {
	label := c.label
	c.label = successor(label)
	return label
}

// successor increments numeric labels numerically ("9" becomes "10") and
// alphabetic labels with a carry ("c" becomes "d", "z" becomes "aa"). Only
// the single-character seeds "1" and "a" occur in practice; the carry rule
// past "z" is a choice, not observed behavior.
func successor(label string) string {
	if n, err := strconv.Atoi(label); err == nil {
		return strconv.Itoa(n + 1)
	}
	b := []byte(label)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 'z' {
			b[i]++
			return string(b)
		}
		b[i] = 'a'
	}
	return "a" + string(b)
}
