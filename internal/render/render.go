// Package render turns a converted page into its final output bytes.
// Plain text is the canonical format; markdown, JSON, and PDF renderers
// cover consumers that want more structure than whitespace carries.
package render

import (
	"fmt"
	"time"
)

// Page is the value handed to renderers: the source document plus the
// plain-text conversion and whatever metadata the pipeline gathered.
type Page struct {
	URL       string
	Title     string
	HTML      string
	Text      string
	FetchedAt time.Time
}

// Renderer converts a page into a final output format.
type Renderer interface {
	Render(p Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}

// ForFormat resolves a format name to its renderer. An empty name selects
// plain text.
func ForFormat(name string) (Renderer, error) {
	switch name {
	case "", "text", "txt":
		return &TextRenderer{}, nil
	case "markdown", "md":
		return &MarkdownRenderer{}, nil
	case "json":
		return &JSONRenderer{}, nil
	case "pdf":
		return &PDFRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown format: %q", name)
}
