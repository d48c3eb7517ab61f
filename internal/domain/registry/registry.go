// Package registry holds the static per-type configuration of commercial
// documents: which fields are required/visible per section, whether tax
// applies, and the defaults populated when a document of that type is
// created or switched to.
//
// The registry is a data-only lookup table. Both the editing layer and the
// renderer consult it, so visibility rules live in exactly one place.
package registry

import (
	"fmt"
	"time"

	"glassdesk/internal/core/types"
)

// DocumentType identifies one of the four commercial document kinds.
type DocumentType string

const (
	TypeQuote    DocumentType = "quote"    // Προσφορά
	TypeInvoice  DocumentType = "invoice"  // Τιμολόγιο
	TypeReceipt  DocumentType = "receipt"  // Απόδειξη
	TypeProforma DocumentType = "proforma" // Προτιμολόγιο
)

// Parse converts a string to a DocumentType, strictly.
func Parse(s string) (DocumentType, error) {
	t := DocumentType(s)
	if !Known(t) {
		return "", fmt.Errorf("unknown document type %q", s)
	}
	return t, nil
}

// Known reports whether t is one of the four document types.
func Known(t DocumentType) bool {
	switch t {
	case TypeQuote, TypeInvoice, TypeReceipt, TypeProforma:
		return true
	}
	return false
}

// TypeLabel returns the Greek display label for a document type.
func TypeLabel(t DocumentType) string {
	switch t {
	case TypeQuote:
		return "Προσφορά"
	case TypeInvoice:
		return "Τιμολόγιο"
	case TypeReceipt:
		return "Απόδειξη"
	case TypeProforma:
		return "Προτιμολόγιο"
	}
	return "Παραστατικό"
}

// Section names the three field groups of a document.
type Section string

const (
	SectionCompany  Section = "company"
	SectionClient   Section = "client"
	SectionDocument Section = "document"
)

// Field names used by the requirement tables. Party fields are shared by the
// company and client sections. Fields not listed here (notes, terms, project
// title, status, signature) are universally optional and never gated.
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldPhone   = "phone"
	FieldEmail   = "email"
	FieldTaxID   = "taxId"

	FieldNumber          = "number"
	FieldDate            = "date"
	FieldDueDate         = "dueDate"
	FieldValidUntil      = "validUntil"
	FieldTransportCost   = "transportCost"
	FieldTransportMethod = "transportMethod"
	FieldTaxSubmission   = "taxSubmissionId"
)

// FieldSet is a set of field names.
type FieldSet map[string]struct{}

func newFieldSet(names ...string) FieldSet {
	s := make(FieldSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether the set contains name.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// FieldRequirement describes one document type: the visible/required fields
// per section plus tax applicability.
type FieldRequirement struct {
	Sections   map[Section]FieldSet
	TaxApplies bool
}

var requirements = map[DocumentType]FieldRequirement{
	TypeQuote: {
		Sections: map[Section]FieldSet{
			SectionCompany:  newFieldSet(FieldName, FieldAddress, FieldPhone, FieldEmail),
			SectionClient:   newFieldSet(FieldName, FieldAddress, FieldPhone, FieldEmail),
			SectionDocument: newFieldSet(FieldNumber, FieldDate, FieldValidUntil),
		},
		TaxApplies: false,
	},
	TypeInvoice: {
		Sections: map[Section]FieldSet{
			SectionCompany:  newFieldSet(FieldName, FieldAddress, FieldPhone, FieldEmail, FieldTaxID),
			SectionClient:   newFieldSet(FieldName, FieldAddress, FieldPhone, FieldEmail, FieldTaxID),
			SectionDocument: newFieldSet(FieldNumber, FieldDate, FieldDueDate, FieldTransportCost, FieldTransportMethod, FieldTaxSubmission),
		},
		TaxApplies: true,
	},
	TypeReceipt: {
		Sections: map[Section]FieldSet{
			SectionCompany:  newFieldSet(FieldName, FieldAddress, FieldTaxID),
			SectionClient:   newFieldSet(FieldName, FieldPhone, FieldEmail),
			SectionDocument: newFieldSet(FieldNumber, FieldDate),
		},
		TaxApplies: true,
	},
	TypeProforma: {
		Sections: map[Section]FieldSet{
			SectionCompany:  newFieldSet(FieldName, FieldAddress, FieldPhone, FieldEmail, FieldTaxID),
			SectionClient:   newFieldSet(FieldName, FieldAddress, FieldTaxID),
			SectionDocument: newFieldSet(FieldNumber, FieldDate, FieldDueDate),
		},
		TaxApplies: true,
	},
}

// RequirementsFor returns the field requirements for a document type.
// Unrecognized types fall back to Invoice's requirements. The fallback is a
// deliberate permissive default, not validation; callers needing strictness
// must check membership with Known first.
func RequirementsFor(t DocumentType) FieldRequirement {
	if req, ok := requirements[t]; ok {
		return req
	}
	return requirements[TypeInvoice]
}

// IsFieldVisible reports whether a field is visible/required for the given
// type and section.
func IsFieldVisible(t DocumentType, field string, section Section) bool {
	return RequirementsFor(t).Sections[section].Has(field)
}

// DefaultTaxRatePercent is the standard Greek VAT rate.
const DefaultTaxRatePercent = 24

// DefaultTerms is the baseline payment terms text.
const DefaultTerms = "Όροι πληρωμής: 30 ημέρες"

// DefaultTransportMethod is the invoice transport annotation ("own means").
const DefaultTransportMethod = "Ιδίοις μέσοις"

// QuoteValidityDays is the default validity window of a quote.
const QuoteValidityDays = 30

// Defaults is the baseline partial document state for a type.
type Defaults struct {
	Terms           string
	TaxRate         types.Money
	ValidUntil      *time.Time
	TransportMethod string
}

// DefaultsFor returns the type defaults. Pure: the reference time is passed
// in by the caller.
func DefaultsFor(t DocumentType, now time.Time) Defaults {
	d := Defaults{
		Terms:   DefaultTerms,
		TaxRate: types.NewMoneyFromInt(DefaultTaxRatePercent),
	}

	switch t {
	case TypeQuote:
		d.TaxRate = types.Zero()
		until := now.AddDate(0, 0, QuoteValidityDays)
		d.ValidUntil = &until
	case TypeInvoice:
		d.TransportMethod = DefaultTransportMethod
	}

	return d
}
