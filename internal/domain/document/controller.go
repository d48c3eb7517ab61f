package document

import (
	"time"

	"github.com/google/uuid"

	"glassdesk/internal/core/apperror"
	"glassdesk/internal/core/numerator"
	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/registry"
	"glassdesk/pkg/logger"
)

// Controller owns one Document under edit. It applies registry defaults on
// type changes and keeps the derived totals consistent: after every public
// mutation returns, Subtotal/TaxAmount/Total match ComputeTotals over the
// current state. All edits are synchronous; there is no point where stale
// totals are observable.
//
// Controllers are plain values passed by reference; several documents can be
// edited side by side without shared state.
type Controller struct {
	doc *Document
	log *logger.Logger
	now func() time.Time

	// edited tracks header fields the user has explicitly set, so type-change
	// default merges do not clobber user input.
	edited map[string]bool
}

// Options configures a new Controller.
type Options struct {
	// Type of the new document. Defaults to invoice.
	Type registry.DocumentType

	// Company is the issuing company block, usually from config.
	Company Party

	// ClientName and ProjectTitle pre-populate the header from the owning
	// project's context.
	ClientName   string
	ProjectTitle string

	// Numerator generates the initial document number. Defaults to the
	// timestamp generator (INV-yyyyMMdd-HHmm).
	Numerator numerator.Generator

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time

	Log *logger.Logger
}

// NewController creates a controller with a freshly initialized document:
// registry defaults for its type, a generated number, and one empty line.
func NewController(opts Options) *Controller {
	if opts.Type == "" {
		opts.Type = registry.TypeInvoice
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Numerator == nil {
		opts.Numerator = numerator.NewTimestamp(numerator.DefaultConfig())
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	now := opts.Now()
	doc := &Document{
		ID:      uuid.New(),
		Type:    opts.Type,
		Number:  opts.Numerator.Next(now),
		Date:    now,
		Company: opts.Company,
		Client:  Party{Name: opts.ClientName},

		ProjectTitle: opts.ProjectTitle,
	}

	// New documents open with a single line of quantity 1.
	first := doc.AddItem()
	first.Quantity = types.NewMoneyFromInt(1)
	first.recalcTotal()

	c := &Controller{
		doc:    doc,
		log:    opts.Log.WithComponent("document"),
		now:    opts.Now,
		edited: make(map[string]bool),
	}
	c.applyDefaults(registry.DefaultsFor(opts.Type, now))
	c.recompute()

	c.log.Debugw("document created", "id", doc.ID, "type", doc.Type, "number", doc.Number)
	return c
}

// Document returns the live document. Callers must mutate through the
// controller only.
func (c *Controller) Document() *Document {
	return c.doc
}

// Snapshot returns a deep copy safe to hand to the renderer.
func (c *Controller) Snapshot() *Document {
	return c.doc.Clone()
}

// SetType switches the document type. Atomically: registry defaults for the
// new type are merged over the header (fields the user already edited are
// preserved; fields invisible under the new type stay in state, hidden, and
// reappear when switching back), then totals are recomputed because tax
// applicability may have changed.
func (c *Controller) SetType(t registry.DocumentType) {
	if t == c.doc.Type {
		return
	}
	c.doc.Type = t
	c.applyDefaults(registry.DefaultsFor(t, c.now()))
	c.recompute()
	c.log.Debugw("document type changed", "id", c.doc.ID, "type", t)
}

func (c *Controller) applyDefaults(d registry.Defaults) {
	if !c.edited["terms"] {
		c.doc.Terms = d.Terms
	}
	if !c.edited["taxRate"] {
		c.doc.TaxRate = d.TaxRate
	}
	if !c.edited["validUntil"] && d.ValidUntil != nil {
		c.doc.ValidUntil = d.ValidUntil
	}
	if !c.edited["transportMethod"] && d.TransportMethod != "" {
		c.doc.TransportMethod = d.TransportMethod
	}
}

// SetHeaderField sets a string header field by name, last-write-wins.
// Unknown names are rejected; values are not validated mid-flight (submit
// time validation belongs to the export pipeline).
func (c *Controller) SetHeaderField(field, value string) error {
	switch field {
	case "invoiceNumber":
		c.doc.Number = value
	case "companyName":
		c.doc.Company.Name = value
	case "companyAddress":
		c.doc.Company.Address = value
	case "companyPhone":
		c.doc.Company.Phone = value
	case "companyEmail":
		c.doc.Company.Email = value
	case "companyTaxId":
		c.doc.Company.TaxID = value
	case "clientName":
		c.doc.Client.Name = value
	case "clientAddress":
		c.doc.Client.Address = value
	case "clientPhone":
		c.doc.Client.Phone = value
	case "clientEmail":
		c.doc.Client.Email = value
	case "clientTaxId":
		c.doc.Client.TaxID = value
	case "projectTitle":
		c.doc.ProjectTitle = value
	case "notes":
		c.doc.Notes = value
	case "terms":
		c.doc.Terms = value
	case "status":
		c.doc.Status = value
	case "transportMethod":
		c.doc.TransportMethod = value
	case "signature":
		c.doc.Signature = value
	case "taxSubmissionId":
		c.doc.TaxSubmissionID = value
	default:
		return apperror.NewValidation("άγνωστο πεδίο παραστατικού").
			WithDetail("field", field)
	}
	c.edited[field] = true
	return nil
}

// SetDate sets the issue date.
func (c *Controller) SetDate(d time.Time) {
	c.doc.Date = d
	c.edited["date"] = true
}

// SetDueDate sets or clears the due date.
func (c *Controller) SetDueDate(d *time.Time) {
	c.doc.DueDate = d
	c.edited["dueDate"] = true
}

// SetValidUntil sets or clears the quote validity date.
func (c *Controller) SetValidUntil(d *time.Time) {
	c.doc.ValidUntil = d
	c.edited["validUntil"] = true
}

// SetTaxRate sets the tax percentage and recomputes totals.
func (c *Controller) SetTaxRate(rate types.Money) error {
	if rate.IsNegative() {
		return apperror.NewValidation("ο συντελεστής ΦΠΑ δεν μπορεί να είναι αρνητικός").
			WithDetail("taxRate", rate.String())
	}
	c.doc.TaxRate = rate
	c.edited["taxRate"] = true
	c.recompute()
	return nil
}

// SetTransportCost sets the transport cost and recomputes totals.
func (c *Controller) SetTransportCost(cost types.Money) error {
	if cost.IsNegative() {
		return apperror.NewValidation("τα μεταφορικά δεν μπορεί να είναι αρνητικά").
			WithDetail("transportCost", cost.String())
	}
	c.doc.TransportCost = cost
	c.edited["transportCost"] = true
	c.recompute()
	return nil
}

// AddItem appends a fresh line and recomputes totals.
func (c *Controller) AddItem() *LineItem {
	li := c.doc.AddItem()
	c.recompute()
	return li
}

// SetItemDescription updates one line's description. Returns false when the
// id does not exist.
func (c *Controller) SetItemDescription(id int64, desc string) bool {
	li := c.doc.Item(id)
	if li == nil {
		return false
	}
	li.Description = desc
	return true
}

// SetItemUnit updates one line's unit label.
func (c *Controller) SetItemUnit(id int64, unit string) bool {
	li := c.doc.Item(id)
	if li == nil {
		return false
	}
	li.Unit = unit
	return true
}

// SetItemQuantity updates one line's quantity, recomputing that line's total
// and the document totals.
func (c *Controller) SetItemQuantity(id int64, q types.Money) error {
	if q.IsNegative() {
		return apperror.NewValidation("η ποσότητα δεν μπορεί να είναι αρνητική").
			WithDetail("itemId", id)
	}
	li := c.doc.Item(id)
	if li == nil {
		return apperror.NewValidation("η γραμμή δεν υπάρχει").WithDetail("itemId", id)
	}
	li.Quantity = q
	li.recalcTotal()
	c.recompute()
	return nil
}

// SetItemUnitPrice updates one line's unit price, recomputing that line's
// total and the document totals.
func (c *Controller) SetItemUnitPrice(id int64, p types.Money) error {
	if p.IsNegative() {
		return apperror.NewValidation("η τιμή μονάδας δεν μπορεί να είναι αρνητική").
			WithDetail("itemId", id)
	}
	li := c.doc.Item(id)
	if li == nil {
		return apperror.NewValidation("η γραμμή δεν υπάρχει").WithDetail("itemId", id)
	}
	li.UnitPrice = p
	li.recalcTotal()
	c.recompute()
	return nil
}

// RemoveItem removes a line and recomputes totals. Removing the last
// remaining line is a silent no-op (see Document.RemoveItem).
func (c *Controller) RemoveItem(id int64) {
	if c.doc.RemoveItem(id) {
		c.recompute()
	}
}

func (c *Controller) recompute() {
	taxApplies := registry.RequirementsFor(c.doc.Type).TaxApplies

	// Transport participates in totals for invoices only.
	transport := types.Zero()
	if c.doc.Type == registry.TypeInvoice {
		transport = c.doc.TransportCost
	}

	t := ComputeTotals(c.doc.Items, transport, c.doc.TaxRate, taxApplies)
	c.doc.Subtotal = t.Subtotal
	c.doc.TaxAmount = t.TaxAmount
	c.doc.Total = t.Total
}
