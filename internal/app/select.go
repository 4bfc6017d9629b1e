package app

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// reduceToSelection narrows a document to the first node matching a CSS
// selector and returns that fragment's HTML. A selector that matches nothing
// yields ErrNoContent.
func reduceToSelection(source, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("parse for selection: %w", err)
	}
	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return "", ErrNoContent
	}
	fragment, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", fmt.Errorf("serialize selection: %w", err)
	}
	return fragment, nil
}
