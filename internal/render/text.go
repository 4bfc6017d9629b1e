package render

// TextRenderer writes the converted text as-is. It is the simplest renderer
// since plain text is already the canonical pipeline format.
type TextRenderer struct{}

// Render returns the page text with a trailing newline.
func (r *TextRenderer) Render(p Page) ([]byte, error) {
	text := p.Text
	if text != "" && text[len(text)-1] != '\n' {
		text += "\n"
	}
	return []byte(text), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
