package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownRenderer converts the page's source HTML to Markdown. It works
// from the HTML rather than the plain text so heading levels, emphasis, and
// link syntax survive.
type MarkdownRenderer struct{}

// Render converts the page HTML into Markdown bytes.
func (r *MarkdownRenderer) Render(p Page) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(p.HTML)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
