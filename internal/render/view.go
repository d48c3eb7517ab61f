package render

import (
	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/document"
	"glassdesk/internal/domain/registry"
)

// dateLayout is the Greek display form for dates.
const dateLayout = "02/01/2006"

// PartyView is a party block with only the fields visible for the type.
type PartyView struct {
	Title   string
	Name    string
	Address string
	Phone   string
	Email   string
	TaxID   string
}

// ItemView is one display row of the item table.
type ItemView struct {
	Index       int
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Total       string
}

// View is the fully resolved display model of one document: every label
// localized, every amount formatted, every visibility rule already applied.
// Both the HTML template and the PDF layout consume it, so print and export
// cannot drift apart.
type View struct {
	TypeLabel    string
	Number       string
	Date         string
	DueDate      string
	ValidUntil   string
	ProjectTitle string

	Company PartyView
	Client  PartyView

	Items []ItemView

	Subtotal        string
	TransportCost   string
	TransportMethod string
	TaxLabel        string
	TaxAmount       string
	TotalLabel      string
	Total           string

	Notes string
	Terms string

	TaxSubmissionID string

	Signature           string
	ShowSignature       bool
	ShowQuoteDisclaimer bool
}

func buildParty(t registry.DocumentType, section registry.Section, title string, p document.Party) PartyView {
	v := PartyView{Title: title}
	vis := func(field string) bool { return registry.IsFieldVisible(t, field, section) }

	if vis(registry.FieldName) {
		v.Name = p.Name
	}
	if vis(registry.FieldAddress) {
		v.Address = p.Address
	}
	if vis(registry.FieldPhone) {
		v.Phone = p.Phone
	}
	if vis(registry.FieldEmail) {
		v.Email = p.Email
	}
	if vis(registry.FieldTaxID) {
		v.TaxID = p.TaxID
	}
	return v
}

// BuildView resolves a document into its display model. Pure: equal documents
// produce equal views.
func BuildView(doc *document.Document) *View {
	t := doc.Type

	v := &View{
		TypeLabel:    registry.TypeLabel(t),
		Number:       doc.Number,
		Date:         doc.Date.Format(dateLayout),
		ProjectTitle: doc.ProjectTitle,
		Company:      buildParty(t, registry.SectionCompany, "Στοιχεία Εταιρείας", doc.Company),
		Client:       buildParty(t, registry.SectionClient, "Στοιχεία Πελάτη", doc.Client),
		Subtotal:     types.FormatEUR(types.Round2(doc.Subtotal)),
		TotalLabel:   "Τελικό Σύνολο",
		Total:        types.FormatEUR(types.Round2(doc.Total)),
		Notes:        doc.Notes,
		Terms:        doc.Terms,
	}

	if doc.DueDate != nil && registry.IsFieldVisible(t, registry.FieldDueDate, registry.SectionDocument) {
		v.DueDate = doc.DueDate.Format(dateLayout)
	}
	if doc.ValidUntil != nil && registry.IsFieldVisible(t, registry.FieldValidUntil, registry.SectionDocument) {
		v.ValidUntil = doc.ValidUntil.Format(dateLayout)
	}

	for i, li := range doc.Items {
		v.Items = append(v.Items, ItemView{
			Index:       i + 1,
			Description: li.Description,
			Quantity:    types.FormatQuantity(li.Quantity),
			Unit:        li.Unit,
			UnitPrice:   types.FormatEUR(types.Round2(li.UnitPrice)),
			Total:       types.FormatEUR(types.Round2(li.Total)),
		})
	}

	// Transport rows appear on invoices only, and only when a cost is set.
	if t == registry.TypeInvoice && doc.TransportCost.IsPositive() {
		v.TransportCost = types.FormatEUR(types.Round2(doc.TransportCost))
		v.TransportMethod = doc.TransportMethod
	}

	if registry.RequirementsFor(t).TaxApplies {
		v.TaxLabel = "ΦΠΑ " + doc.TaxRate.String() + "%"
		v.TaxAmount = types.FormatEUR(types.Round2(doc.TaxAmount))
	}

	switch t {
	case registry.TypeQuote:
		v.TotalLabel = "Συνολική Αξία"
		v.ShowQuoteDisclaimer = true
		// The signature block appears only when a signature is configured.
		v.ShowSignature = doc.Signature != ""
		v.Signature = doc.Signature
	case registry.TypeProforma:
		v.ShowSignature = doc.Signature != ""
		v.Signature = doc.Signature
	case registry.TypeInvoice:
		if registry.IsFieldVisible(t, registry.FieldTaxSubmission, registry.SectionDocument) {
			v.TaxSubmissionID = doc.TaxSubmissionID
		}
	}

	return v
}
