package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer lays the converted text out as a PDF document with a title
// header. Images and styling are not rendered; the text is the content.
type PDFRenderer struct{}

// Render converts the page into PDF bytes.
func (r *PDFRenderer) Render(p Page) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if p.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, p.Title, "", "L", false)
		pdf.Ln(4)
	}

	if p.URL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+p.URL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	// The converted text encodes structure in its line layout, so a
	// monospace face keeps list markers and table pipes aligned.
	pdf.SetFont("Courier", "", 10)
	for _, line := range strings.Split(p.Text, "\n") {
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 4.5, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
