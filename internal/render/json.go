package render

import (
	"encoding/json"
	"fmt"
	"time"
)

// pageJSON is the serialized shape of a page.
type pageJSON struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	FetchedAt string `json:"fetched_at,omitempty"` // ISO8601
}

// JSONRenderer produces a structured JSON document from the page.
type JSONRenderer struct{}

// Render marshals the page metadata and text as indented JSON.
func (r *JSONRenderer) Render(p Page) ([]byte, error) {
	out := pageJSON{
		URL:   p.URL,
		Title: p.Title,
		Text:  p.Text,
	}
	if !p.FetchedAt.IsZero() {
		out.FetchedAt = p.FetchedAt.UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
