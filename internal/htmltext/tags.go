package htmltext

// Classification tables consulted by the converter. They are built once at
// package load and never mutated, so concurrent conversions can read them
// without coordination.

// ignoredTags mark subtrees that contribute nothing to the text rendering:
// no text is extracted and the converter does not descend into them.
var ignoredTags = map[string]bool{
	"script":   true,
	"noscript": true,
	"style":    true,
	"object":   true,
	"applet":   true,
	"iframe":   true,
}

// paragraphTags are separated from surrounding content by a blank line on
// both sides.
var paragraphTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "table": true, "ol": true, "ul": true, "dl": true,
	"dd": true, "blockquote": true, "dialog": true, "figure": true,
	"aside": true, "section": true,
}

// blockTags are separated by a single line break on both sides. tr appears
// here and also gets row-marker treatment in the converter; both apply.
var blockTags = map[string]bool{
	"div": true, "address": true, "li": true, "dt": true, "center": true,
	"del": true, "article": true, "header": true, "footer": true,
	"nav": true, "pre": true, "legend": true, "tr": true,
}
