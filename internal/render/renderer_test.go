package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glassdesk/internal/core/numerator"
	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/document"
	"glassdesk/internal/domain/registry"
)

func testDocument(t *testing.T, typ registry.DocumentType) *document.Document {
	t.Helper()
	clock := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	c := document.NewController(document.Options{
		Type: typ,
		Company: document.Party{
			Name:    "Υαλοπίνακες ΑΕ",
			Address: "Λεωφ. Ρόδου 15",
			Phone:   "22410-12345",
			Email:   "info@yalopinakes.gr",
			TaxID:   "123456789",
		},
		ClientName: "Δήμος Ρόδου",
		Numerator:  &numerator.MockGenerator{NextFunc: func(time.Time) string { return "INV-20260831-1000" }},
		Now:        func() time.Time { return clock },
	})
	c.SetItemDescription(1, "Τζάμι ασφαλείας 8mm")
	require.NoError(t, c.SetItemQuantity(1, types.NewMoneyFromInt(2)))
	require.NoError(t, c.SetItemUnitPrice(1, types.MustMoney("100")))
	return c.Document()
}

func TestRender_Deterministic(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)

	a, err := Render(doc)
	require.NoError(t, err)
	b, err := Render(doc)
	require.NoError(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes(), "equal documents render to identical bytes")
	assert.Equal(t, "text/html; charset=utf-8", a.ContentType())
}

func TestRender_DoesNotMutateDocument(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)
	before := doc.Clone()

	_, err := Render(doc)
	require.NoError(t, err)

	assert.Equal(t, before.Number, doc.Number)
	assert.Equal(t, len(before.Items), len(doc.Items))
	assert.True(t, before.Total.Equal(doc.Total))
}

func TestBuildView_Invoice(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)
	doc.TaxSubmissionID = "MD-2026-0042"

	v := BuildView(doc)

	assert.Equal(t, "Τιμολόγιο", v.TypeLabel)
	assert.Equal(t, "31/08/2026", v.Date)
	assert.Equal(t, "123456789", v.Company.TaxID)
	assert.Equal(t, "ΦΠΑ 24%", v.TaxLabel)
	assert.Equal(t, "€48.00", v.TaxAmount)
	assert.Equal(t, "Τελικό Σύνολο", v.TotalLabel)
	assert.Equal(t, "€248.00", v.Total)
	assert.Equal(t, "MD-2026-0042", v.TaxSubmissionID)
	assert.False(t, v.ShowSignature)
	assert.False(t, v.ShowQuoteDisclaimer)
	assert.Empty(t, v.TransportCost, "zero transport renders no row")
}

func TestBuildView_Quote(t *testing.T) {
	doc := testDocument(t, registry.TypeQuote)
	doc.Signature = "Γ. Παπαδόπουλος"

	v := BuildView(doc)

	assert.Equal(t, "Προσφορά", v.TypeLabel)
	assert.Empty(t, v.Company.TaxID, "quotes hide the tax id")
	assert.Empty(t, v.TaxAmount)
	assert.Equal(t, "Συνολική Αξία", v.TotalLabel)
	assert.Equal(t, "€200.00", v.Total)
	assert.NotEmpty(t, v.ValidUntil)
	assert.True(t, v.ShowQuoteDisclaimer)
	assert.True(t, v.ShowSignature)
	assert.Equal(t, "Γ. Παπαδόπουλος", v.Signature)
}

func TestBuildView_SignatureOnlyWhenConfigured(t *testing.T) {
	// Quote and Proforma carry a signature block only when a signature is
	// set; other types never do.
	for _, typ := range []registry.DocumentType{registry.TypeQuote, registry.TypeProforma} {
		doc := testDocument(t, typ)

		assert.False(t, BuildView(doc).ShowSignature, "%s without signature", typ)

		doc.Signature = "Γ. Παπαδόπουλος"
		assert.True(t, BuildView(doc).ShowSignature, "%s with signature", typ)
	}

	doc := testDocument(t, registry.TypeInvoice)
	doc.Signature = "Γ. Παπαδόπουλος"
	assert.False(t, BuildView(doc).ShowSignature, "invoices never show a signature block")
}

func TestBuildView_InvoiceTransportRow(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)
	doc.TransportCost = types.MustMoney("50")

	v := BuildView(doc)

	assert.Equal(t, "€50.00", v.TransportCost)
	assert.Equal(t, registry.DefaultTransportMethod, v.TransportMethod)
}

func TestRender_HTMLContent(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)
	doc.TransportCost = types.MustMoney("50")

	rep, err := Render(doc)
	require.NoError(t, err)
	html := string(rep.Bytes())

	assert.Contains(t, html, "<h1>Τιμολόγιο</h1>")
	assert.Contains(t, html, "Τζάμι ασφαλείας 8mm")
	assert.Contains(t, html, "Μεταφορικά")
	assert.Contains(t, html, "Ιδίοις μέσοις")
	assert.Contains(t, html, "ΑΦΜ: 123456789")
	assert.NotContains(t, html, "Υπογραφή")
}

func TestRender_QuoteHTMLContent(t *testing.T) {
	doc := testDocument(t, registry.TypeQuote)

	rep, err := Render(doc)
	require.NoError(t, err)
	html := string(rep.Bytes())

	assert.Contains(t, html, "<h1>Προσφορά</h1>")
	assert.Contains(t, html, "δεν αποτελεί φορολογικό παραστατικό")
	assert.NotContains(t, html, `<div class="signature">`, "no signature configured, no block")
	assert.NotContains(t, html, "ΦΠΑ")
	assert.NotContains(t, html, "myDATA")
}

func TestRender_QuoteSignatureBlock(t *testing.T) {
	doc := testDocument(t, registry.TypeQuote)
	doc.Signature = "Γ. Παπαδόπουλος"

	rep, err := Render(doc)
	require.NoError(t, err)

	assert.Contains(t, string(rep.Bytes()), `<div class="signature">Γ. Παπαδόπουλος</div>`)
}

func TestCached(t *testing.T) {
	doc := testDocument(t, registry.TypeInvoice)
	rep, err := Render(doc)
	require.NoError(t, err)

	fromCache := Cached(doc, rep.Bytes())

	assert.Equal(t, rep.Bytes(), fromCache.Bytes())
	assert.Equal(t, rep.View().Total, fromCache.View().Total)
}
