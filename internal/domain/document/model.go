// Package document implements the commercial document aggregate: the line
// item ledger, the totals calculation, and the state controller driving both.
package document

import (
	"time"

	"github.com/google/uuid"

	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/registry"
)

// DefaultUnit is the unit pre-filled on new lines (τεμάχια).
const DefaultUnit = "τεμ."

// LineItem is one row of the ledger.
// Total always equals Quantity*UnitPrice at full precision; rounding to two
// decimals happens at display time only.
type LineItem struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Quantity    types.Money `json:"quantity"`
	Unit        string      `json:"unit"`
	UnitPrice   types.Money `json:"unitPrice"`
	Total       types.Money `json:"total"`
}

func (li *LineItem) recalcTotal() {
	li.Total = li.Quantity.Mul(li.UnitPrice)
}

// Party is a company or client block.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// Document is the aggregate root: one quote/invoice/receipt/proforma with
// header fields, the ledger, and derived totals.
//
// Subtotal, TaxAmount and Total are derived and never edited directly; the
// Controller keeps them consistent after every mutation. The document is not
// persisted here: on finalize it is handed to the owning project's storage.
type Document struct {
	ID     uuid.UUID             `json:"id"`
	Type   registry.DocumentType `json:"type"`
	Number string                `json:"invoiceNumber"`

	Date       time.Time  `json:"date"`
	DueDate    *time.Time `json:"dueDate,omitempty"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`

	Company Party `json:"company"`
	Client  Party `json:"client"`

	ProjectTitle string `json:"projectTitle,omitempty"`

	Items []LineItem `json:"items"`

	// TransportCost participates in totals only for invoices.
	TransportCost   types.Money `json:"transportCost"`
	TransportMethod string      `json:"transportMethod,omitempty"`

	TaxRate types.Money `json:"taxRate"`

	// Derived values, recomputed on every mutation.
	Subtotal  types.Money `json:"subtotal"`
	TaxAmount types.Money `json:"taxAmount"`
	Total     types.Money `json:"total"`

	Notes  string `json:"notes,omitempty"`
	Terms  string `json:"terms,omitempty"`
	Status string `json:"status,omitempty"`

	// Opaque metadata: rendered when present, never computed.
	Signature       string `json:"signature,omitempty"`
	TaxSubmissionID string `json:"taxSubmissionId,omitempty"`

	// lastItemID is the high-water mark for line ids. Ids are assigned
	// monotonically per document and never reused, even after removals.
	lastItemID int64
}

// AddItem appends a zero-valued line with a fresh id and returns it.
// Ids start at 1 and are never reused for the lifetime of the document.
func (d *Document) AddItem() *LineItem {
	for _, li := range d.Items {
		if li.ID > d.lastItemID {
			d.lastItemID = li.ID
		}
	}
	d.lastItemID++

	d.Items = append(d.Items, LineItem{
		ID:        d.lastItemID,
		Quantity:  types.Zero(),
		Unit:      DefaultUnit,
		UnitPrice: types.Zero(),
		Total:     types.Zero(),
	})
	return &d.Items[len(d.Items)-1]
}

// Item returns the line with the given id, or nil.
func (d *Document) Item(id int64) *LineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// RemoveItem removes the line with the given id. A document always carries at
// least one line, so removing the last remaining item is a guarded no-op, not
// an error; callers disable the remove action when one line is left. Returns
// whether a line was removed.
func (d *Document) RemoveItem(id int64) bool {
	if len(d.Items) <= 1 {
		return false
	}
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy. The renderer receives clones so that it can
// never mutate live editing state.
func (d *Document) Clone() *Document {
	c := *d
	c.Items = make([]LineItem, len(d.Items))
	copy(c.Items, d.Items)
	if d.DueDate != nil {
		due := *d.DueDate
		c.DueDate = &due
	}
	if d.ValidUntil != nil {
		until := *d.ValidUntil
		c.ValidUntil = &until
	}
	return &c
}
