package export

import (
	"fmt"
	"html/template"

	"inkwell/api/internal/render"
)

// Service turns Markdown documents into downloadable files.
type Service struct{}

// NewService creates a new export service
func NewService() *Service {
	return &Service{}
}

// Export renders the document's Markdown to HTML and generates the
// requested output format.
func (s *Service) Export(doc Document, format Format) (*Result, error) {
	contentHTML := render.ToHTML(doc.Content)

	html, err := RenderDocumentHTML(TemplateData{
		Title:       doc.Title,
		ContentHTML: template.HTML(contentHTML),
		Author:      doc.Author,
		UpdatedAt:   doc.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	switch format {
	case FormatPDF:
		return exportPDF(html, doc.Title)
	case FormatDOCX:
		return exportDOCX(html, doc.Title)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
