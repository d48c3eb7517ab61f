// Package glassdesk is an embeddable document engine for quotes, invoices,
// receipts and proforma invoices. The host application opens a Controller per
// document under edit, drives it from form events, and hands finished
// documents to the export pipeline and the project timeline.
package glassdesk

import (
	"context"

	"glassdesk/internal/config"
	"glassdesk/internal/core/numerator"
	"glassdesk/internal/domain/document"
	"glassdesk/internal/domain/project"
	"glassdesk/internal/domain/registry"
	"glassdesk/internal/export"
	"glassdesk/internal/render"
	"glassdesk/pkg/logger"
)

// Engine wires the document engine together: configuration, numbering,
// logging and the export pipeline. One Engine serves any number of
// concurrently edited documents.
type Engine struct {
	cfg     *config.Config
	log     *logger.Logger
	numbers numerator.Generator
	exports *export.Pipeline
}

// New creates an Engine. A nil cfg loads configuration from the environment;
// a nil log builds one from the configured level.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Load()
	}
	if log == nil {
		var err error
		log, err = logger.New(logger.Config{
			Level:       cfg.LogLevel,
			Development: cfg.Development,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		cfg:     cfg,
		log:     log,
		numbers: numerator.NewTimestamp(numerator.Config{Prefix: cfg.NumberPrefix}),
		exports: export.NewPipeline(log),
	}, nil
}

// NewDocument opens a controller for a fresh document of the given type,
// seeded with the configured company profile and the project context.
func (e *Engine) NewDocument(t registry.DocumentType, pctx project.Context) *document.Controller {
	return document.NewController(document.Options{
		Type: t,
		Company: document.Party{
			Name:    e.cfg.Company.Name,
			Address: e.cfg.Company.Address,
			Phone:   e.cfg.Company.Phone,
			Email:   e.cfg.Company.Email,
			TaxID:   e.cfg.Company.TaxID,
		},
		ClientName:   pctx.Client,
		ProjectTitle: pctx.ProjectTitle,
		Numerator:    e.numbers,
		Log:          e.log,
	})
}

// PrintView renders a document for the print path.
func (e *Engine) PrintView(ctx context.Context, doc *document.Document) (*render.Representation, error) {
	return e.exports.PrintView(ctx, doc)
}

// ExportPDF produces the PDF bytes and download filename for a document.
func (e *Engine) ExportPDF(ctx context.Context, doc *document.Document) (*export.Result, error) {
	return e.exports.ExportPDF(ctx, doc)
}

// Finish records an issued document on the project timeline.
func (e *Engine) Finish(doc *document.Document, store project.ItemStore) (project.Item, error) {
	return project.Finish(doc, store)
}
