// Package project bridges finished documents back into the owning project's
// item timeline.
package project

import (
	"fmt"

	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/document"
	"glassdesk/internal/domain/registry"
)

// Context is the project state a document editor is opened with.
type Context struct {
	Client       string
	ProjectTitle string
}

// Item is a project timeline entry derived from an issued document. The full
// document travels along so it can be reopened for reprint or re-export.
type Item struct {
	Type          string             `json:"type"`
	Title         string             `json:"title"`
	Client        string             `json:"client"`
	Date          string             `json:"date"`
	StartEndDates string             `json:"startEndDates,omitempty"`
	Stage         string             `json:"stage"`
	Notes         string             `json:"notes,omitempty"`
	InvoiceData   *document.Document `json:"invoiceData"`
}

// ItemStore receives finished items. Persistence lives with the caller.
type ItemStore interface {
	Save(item Item) error
}

// BuildItem converts an issued document into its project timeline entry.
// Dates use ISO form; human-facing fields carry the Greek labels the rest of
// the project view uses.
func BuildItem(doc *document.Document) Item {
	it := Item{
		Type:        "invoice",
		Title:       fmt.Sprintf("%s %s", registry.TypeLabel(doc.Type), doc.Number),
		Client:      doc.Client.Name,
		Date:        doc.Date.Format("2006-01-02"),
		Stage:       "Εκδόθηκε",
		Notes:       fmt.Sprintf("Αξία: %s", types.FormatEUR(types.Round2(doc.Total))),
		InvoiceData: doc.Clone(),
	}
	if doc.DueDate != nil {
		it.StartEndDates = fmt.Sprintf("Λήξη: %s", doc.DueDate.Format("2006-01-02"))
	}
	if doc.Notes != "" {
		it.Notes += "\n" + doc.Notes
	}
	return it
}

// Finish builds the item for doc and saves it.
func Finish(doc *document.Document, store ItemStore) (Item, error) {
	it := BuildItem(doc)
	if err := store.Save(it); err != nil {
		return Item{}, err
	}
	return it, nil
}
