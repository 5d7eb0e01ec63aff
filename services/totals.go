package services

// VATRate is the fixed value-added tax applied to the material subtotal.
const VATRate = 0.20

// QuoteTotals holds the derived totals of the material table. Payment plan
// rows never contribute here: the plan tracks collection of an already
// quoted price, not additional charges.
type QuoteTotals struct {
	Subtotal   float64
	VATAmount  float64
	GrandTotal float64
}

// CalcQuoteTotals sums the stored total cell of every line item, re-parsing
// each from its text form. A malformed total cell contributes 0 instead of
// aborting the whole computation.
func CalcQuoteTotals(items []LineItem) QuoteTotals {
	var subtotal float64
	for _, it := range items {
		v, err := ParseAmount(it.Total)
		if err != nil {
			continue
		}
		subtotal += v
	}

	subtotal = Round2(subtotal)
	vat := Round2(subtotal * VATRate)
	return QuoteTotals{
		Subtotal:   subtotal,
		VATAmount:  vat,
		GrandTotal: Round2(subtotal + vat),
	}
}
