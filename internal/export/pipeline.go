// Package export produces the outward-facing artifacts of a document: the
// print representation and the PDF download. It owns the submit-time
// preconditions, the page scratch lifecycle, and the distinction between
// capture failures and assembly failures.
package export

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"glassdesk/internal/core/apperror"
	"glassdesk/internal/domain/document"
	"glassdesk/internal/render"
	"glassdesk/pkg/logger"
)

// Result is a finished PDF export.
type Result struct {
	PDF      []byte
	Filename string
}

// Pipeline runs print and PDF exports. Exports are serialized: the page
// scratch is a single working area, so one export runs at a time while
// editing continues concurrently.
type Pipeline struct {
	log    *logger.Logger
	tracer trace.Tracer
	cache  *repCache

	mu sync.Mutex // serializes scratch use

	scratchAcquired atomic.Int64
	scratchReleased atomic.Int64
}

// NewPipeline creates an export pipeline.
func NewPipeline(log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{
		log:    log.WithComponent("export"),
		tracer: otel.Tracer("glassdesk/export"),
		cache:  newRepCache(),
	}
}

// PrintView returns the HTML representation for the print path. Printing is
// render-only; the submit-time preconditions apply to PDF export alone.
func (p *Pipeline) PrintView(ctx context.Context, doc *document.Document) (*render.Representation, error) {
	_, span := p.tracer.Start(ctx, "export.print")
	defer span.End()

	rep, err := p.representation(doc)
	if err != nil {
		span.RecordError(err)
	}
	return rep, err
}

// ExportPDF produces the PDF bytes and download filename for a document.
// Preconditions run before any scratch is touched; a rejected document never
// allocates page resources. Capture failures come back as render errors,
// output failures as assembly errors, both with user-facing Greek messages.
func (p *Pipeline) ExportPDF(ctx context.Context, doc *document.Document) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "export.pdf",
		trace.WithAttributes(
			attribute.String("document.id", doc.ID.String()),
			attribute.String("document.type", string(doc.Type)),
		))
	defer span.End()

	if err := checkExportable(doc); err != nil {
		span.RecordError(err)
		return nil, err
	}

	_, renderSpan := p.tracer.Start(ctx, "export.render")
	rep, err := p.representation(doc)
	renderSpan.End()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.acquireScratch(rep.View())
	defer p.releaseScratch()

	_, layoutSpan := p.tracer.Start(ctx, "export.layout")
	s.layout(rep.View())
	layoutSpan.End()

	_, captureSpan := p.tracer.Start(ctx, "export.capture")
	pdfDoc, err := s.m.Generate()
	captureSpan.End()
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewRender("Σφάλμα κατά τη δημιουργία του PDF. Δοκιμάστε ξανά.", err).
			WithDetail("document", doc.ID.String())
	}

	_, assembleSpan := p.tracer.Start(ctx, "export.assemble")
	raw := pdfDoc.GetBytes()
	filename := BuildFilename(doc)
	assembleSpan.End()
	if len(raw) == 0 {
		err := apperror.NewAssembly("Σφάλμα κατά τη σύνθεση του αρχείου PDF.", nil).
			WithDetail("document", doc.ID.String())
		span.RecordError(err)
		return nil, err
	}

	res := &Result{PDF: raw, Filename: filename}
	p.log.Infow("pdf exported",
		"document", doc.ID, "type", doc.Type, "filename", res.Filename, "bytes", len(raw))
	return res, nil
}

// representation renders the document, reusing the cached HTML when the
// document content has not changed since the last render.
func (p *Pipeline) representation(doc *document.Document) (*render.Representation, error) {
	key, err := contentKey(doc)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	if rep, ok := p.cache.get(key, doc); ok {
		return rep, nil
	}

	rep, err := render.Render(doc)
	if err != nil {
		return nil, err
	}
	p.cache.put(key, rep.Bytes())
	return rep, nil
}

func (p *Pipeline) acquireScratch(v *render.View) *scratch {
	p.scratchAcquired.Add(1)
	return newScratch(v)
}

func (p *Pipeline) releaseScratch() {
	p.scratchReleased.Add(1)
}

// checkExportable enforces the submit-time preconditions. Messages are
// user-facing.
func checkExportable(doc *document.Document) error {
	if len(doc.Items) == 0 {
		return apperror.NewValidation("Προσθέστε τουλάχιστον μία γραμμή στο παραστατικό")
	}
	if strings.TrimSpace(doc.Client.Name) == "" {
		return apperror.NewValidation("Συμπληρώστε το όνομα του πελάτη")
	}
	return nil
}
