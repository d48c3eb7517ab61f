// Package render turns documents into printable representations. Rendering is
// pure: the same document always produces the same bytes, and nothing here
// mutates the input.
package render

import (
	"bytes"

	"glassdesk/internal/core/apperror"
	"glassdesk/internal/domain/document"
)

// Representation is a rendered document: the HTML bytes for the print path
// plus the resolved view model the PDF layout consumes. Immutable once built.
type Representation struct {
	view *View
	html []byte
}

// Bytes returns the rendered HTML.
func (r *Representation) Bytes() []byte {
	out := make([]byte, len(r.html))
	copy(out, r.html)
	return out
}

// View returns the resolved display model.
func (r *Representation) View() *View {
	return r.view
}

// ContentType returns the media type of Bytes.
func (r *Representation) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the full representation of a document.
func Render(doc *document.Document) (*Representation, error) {
	view := BuildView(doc)

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, view); err != nil {
		return nil, apperror.NewRender("αποτυχία δημιουργίας προεπισκόπησης", err).
			WithDetail("document", doc.ID.String())
	}

	return &Representation{view: view, html: buf.Bytes()}, nil
}

// Cached rebuilds a representation from previously rendered HTML, recomputing
// only the view model. Used by caches that store the HTML bytes.
func Cached(doc *document.Document, html []byte) *Representation {
	return &Representation{view: BuildView(doc), html: html}
}
