package document

import "glassdesk/internal/core/types"

// Totals are the derived financial values of a document.
type Totals struct {
	Subtotal  types.Money
	TaxAmount types.Money
	Total     types.Money
}

// ComputeTotals derives the document totals from the ledger:
//
//	subtotal   = Σ item.Total
//	baseAmount = subtotal + transportCost
//	taxAmount  = taxApplies ? baseAmount * taxRate/100 : 0
//	total      = baseAmount + taxAmount
//
// The whole ledger is summed on every call. Documents carry a handful of
// lines, so full recomputation keeps the cascade trivially correct.
func ComputeTotals(items []LineItem, transportCost, taxRate types.Money, taxApplies bool) Totals {
	subtotal := types.Zero()
	for i := range items {
		subtotal = subtotal.Add(items[i].Total)
	}

	base := subtotal.Add(transportCost)

	tax := types.Zero()
	if taxApplies {
		tax = types.Percent(base, taxRate)
	}

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     base.Add(tax),
	}
}
