// Package templates renders the quote form views as templ components.
package templates

// ItemRowView is one material row as shown in the form.
type ItemRowView struct {
	ID          string
	Index       int
	Description string
	Unit        string
	Qty         string
	UnitPrice   string
	Total       string
}

// PaymentRowView is one installment row as shown in the form.
type PaymentRowView struct {
	ID        string
	Index     int
	Date      string
	TotalDue  string
	Received  string
	Remaining string
}

// TotalsView carries the pre-formatted totals strings.
type TotalsView struct {
	Subtotal   string
	VAT        string
	GrandTotal string
}

// QuotePageData is everything the quote form page needs.
type QuotePageData struct {
	QuoteID         string
	CompanyTitle    string
	CustomerName    string
	CustomerTC      string
	CustomerPhone   string
	CustomerAddress string
	Items           []ItemRowView
	Payments        []PaymentRowView
	Totals          TotalsView
	SaveFolder      string
}
