package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glassdesk/internal/core/apperror"
	"glassdesk/internal/core/numerator"
	"glassdesk/internal/core/types"
	"glassdesk/internal/domain/registry"
)

var testClock = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func newTestController(t registry.DocumentType) *Controller {
	return NewController(Options{
		Type:       t,
		Company:    Party{Name: "Υαλοπίνακες ΑΕ", TaxID: "123456789"},
		ClientName: "Δήμος Ρόδου",
		Numerator:  &numerator.MockGenerator{NextFunc: func(time.Time) string { return "INV-20260831-1000" }},
		Now:        func() time.Time { return testClock },
	})
}

func TestNewController_InvoiceDefaults(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	d := c.Document()

	assert.NotEqual(t, "", d.ID.String())
	assert.Equal(t, "INV-20260831-1000", d.Number)
	assert.Equal(t, testClock, d.Date)
	assert.Equal(t, "Δήμος Ρόδου", d.Client.Name)
	assert.Equal(t, registry.DefaultTerms, d.Terms)
	assert.Equal(t, registry.DefaultTransportMethod, d.TransportMethod)
	assert.True(t, d.TaxRate.Equal(types.NewMoneyFromInt(24)))

	require.Len(t, d.Items, 1)
	assert.Equal(t, int64(1), d.Items[0].ID)
	assert.True(t, d.Items[0].Quantity.Equal(types.NewMoneyFromInt(1)))
	assert.Equal(t, DefaultUnit, d.Items[0].Unit)
	assert.True(t, d.Total.IsZero())
}

func TestNewController_QuoteDefaults(t *testing.T) {
	c := newTestController(registry.TypeQuote)
	d := c.Document()

	assert.True(t, d.TaxRate.IsZero())
	require.NotNil(t, d.ValidUntil)
	assert.Equal(t, testClock.AddDate(0, 0, registry.QuoteValidityDays), *d.ValidUntil)
}

func TestController_TypeSwitchRestoresTax(t *testing.T) {
	c := newTestController(registry.TypeQuote)
	require.NoError(t, c.SetItemQuantity(1, types.NewMoneyFromInt(2)))
	require.NoError(t, c.SetItemUnitPrice(1, types.MustMoney("100")))

	d := c.Document()
	assert.True(t, d.TaxAmount.IsZero())
	assert.True(t, d.Total.Equal(types.MustMoney("200")))

	c.SetType(registry.TypeInvoice)

	assert.True(t, d.TaxRate.Equal(types.NewMoneyFromInt(24)), "untouched tax rate takes the invoice default")
	assert.True(t, d.TaxAmount.Equal(types.MustMoney("48")))
	assert.True(t, d.Total.Equal(types.MustMoney("248")))
	require.Len(t, d.Items, 1)
	assert.True(t, d.Items[0].Total.Equal(types.MustMoney("200")), "lines are untouched by type switches")

	c.SetType(registry.TypeQuote)
	assert.True(t, d.TaxAmount.IsZero())
	assert.True(t, d.Total.Equal(types.MustMoney("200")))
}

func TestController_TypeSwitchPreservesEditedFields(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	require.NoError(t, c.SetTaxRate(types.NewMoneyFromInt(13)))
	require.NoError(t, c.SetHeaderField("terms", "Προκαταβολή 50%"))

	c.SetType(registry.TypeQuote)
	c.SetType(registry.TypeInvoice)

	d := c.Document()
	assert.True(t, d.TaxRate.Equal(types.NewMoneyFromInt(13)), "user-set rate survives type switches")
	assert.Equal(t, "Προκαταβολή 50%", d.Terms)
}

func TestController_HiddenFieldsSurviveTypeSwitch(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	require.NoError(t, c.SetHeaderField("clientTaxId", "998877665"))
	require.NoError(t, c.SetTransportCost(types.MustMoney("50")))

	// Quote hides taxId and transport; the values stay in state.
	c.SetType(registry.TypeQuote)
	c.SetType(registry.TypeInvoice)

	d := c.Document()
	assert.Equal(t, "998877665", d.Client.TaxID)
	assert.True(t, d.TransportCost.Equal(types.MustMoney("50")))
}

func TestController_TransportCountsForInvoicesOnly(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	require.NoError(t, c.SetItemQuantity(1, types.NewMoneyFromInt(1)))
	require.NoError(t, c.SetItemUnitPrice(1, types.MustMoney("1000")))
	require.NoError(t, c.SetTransportCost(types.MustMoney("50")))

	d := c.Document()
	assert.True(t, d.TaxAmount.Equal(types.MustMoney("252")))
	assert.True(t, d.Total.Equal(types.MustMoney("1302")))

	c.SetType(registry.TypeProforma)
	assert.True(t, d.Subtotal.Equal(types.MustMoney("1000")))
	assert.True(t, d.TaxAmount.Equal(types.MustMoney("240")), "transport drops out of the base")
	assert.True(t, d.Total.Equal(types.MustMoney("1240")))
}

func TestController_AddAndRemoveLines(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	require.NoError(t, c.SetItemQuantity(1, types.NewMoneyFromInt(1)))
	require.NoError(t, c.SetItemUnitPrice(1, types.MustMoney("1000")))
	require.NoError(t, c.SetTransportCost(types.MustMoney("50")))

	li := c.AddItem()
	require.NoError(t, c.SetItemQuantity(li.ID, types.NewMoneyFromInt(3)))
	require.NoError(t, c.SetItemUnitPrice(li.ID, types.MustMoney("10")))

	d := c.Document()
	assert.True(t, d.Subtotal.Equal(types.MustMoney("1030")))
	assert.True(t, d.TaxAmount.Equal(types.MustMoney("259.2")))
	assert.True(t, d.Total.Equal(types.MustMoney("1339.2")))

	c.RemoveItem(li.ID)
	assert.True(t, d.Total.Equal(types.MustMoney("1302")))

	// Last line cannot be removed; totals stay put.
	c.RemoveItem(1)
	require.Len(t, d.Items, 1)
	assert.True(t, d.Total.Equal(types.MustMoney("1302")))
}

func TestController_RejectsNegativeAmounts(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	before := c.Snapshot()

	err := c.SetTaxRate(types.MustMoney("-1"))
	assert.True(t, apperror.IsValidation(err))

	err = c.SetTransportCost(types.MustMoney("-5"))
	assert.True(t, apperror.IsValidation(err))

	err = c.SetItemQuantity(1, types.MustMoney("-2"))
	assert.True(t, apperror.IsValidation(err))

	err = c.SetItemUnitPrice(1, types.MustMoney("-2"))
	assert.True(t, apperror.IsValidation(err))

	d := c.Document()
	assert.True(t, d.TaxRate.Equal(before.TaxRate), "rejected edits leave state unchanged")
	assert.True(t, d.TransportCost.Equal(before.TransportCost))
	assert.True(t, d.Items[0].Quantity.Equal(before.Items[0].Quantity))
}

func TestController_UnknownHeaderField(t *testing.T) {
	c := newTestController(registry.TypeInvoice)

	err := c.SetHeaderField("nope", "x")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestController_UnknownItemID(t *testing.T) {
	c := newTestController(registry.TypeInvoice)

	assert.False(t, c.SetItemDescription(99, "x"))
	assert.True(t, apperror.IsValidation(c.SetItemQuantity(99, types.NewMoneyFromInt(1))))
}

func TestController_SnapshotIsDetached(t *testing.T) {
	c := newTestController(registry.TypeInvoice)
	snap := c.Snapshot()

	require.NoError(t, c.SetHeaderField("clientName", "Άλλος Πελάτης"))
	c.AddItem()

	assert.Equal(t, "Δήμος Ρόδου", snap.Client.Name)
	assert.Len(t, snap.Items, 1)
}
