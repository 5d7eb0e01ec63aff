package handlers

import (
	"fmt"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
	"quoteform/templates"
)

// loadRows fetches the child rows of a quote from the named collection,
// ordered by sort_order.
func loadRows(app *pocketbase.PocketBase, collection, quoteID string) ([]*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		return nil, fmt.Errorf("collection %s not found: %w", collection, err)
	}
	records, err := app.FindRecordsByFilter(col, "quote = {:quoteId}", "sort_order", 0, 0, map[string]any{"quoteId": quoteID})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return records, nil
}

// lineItemsFromRecords maps line item records onto the ledger model rows.
func lineItemsFromRecords(records []*core.Record) []services.LineItem {
	items := make([]services.LineItem, 0, len(records))
	for _, r := range records {
		items = append(items, services.LineItem{
			Description: r.GetString("description"),
			Unit:        r.GetString("unit"),
			Qty:         r.GetString("qty"),
			UnitPrice:   r.GetString("unit_price"),
			Total:       r.GetString("total"),
		})
	}
	return items
}

// installmentsFromRecords maps installment records onto the ledger model rows.
func installmentsFromRecords(records []*core.Record) []services.Installment {
	rows := make([]services.Installment, 0, len(records))
	for _, r := range records {
		rows = append(rows, services.Installment{
			Date:      r.GetString("date"),
			TotalDue:  r.GetString("total_due"),
			Received:  r.GetString("received"),
			Remaining: r.GetString("remaining"),
		})
	}
	return rows
}

// companyFromQuote reads the company header off the quote record, falling
// back to the built-in defaults for blank fields.
func companyFromQuote(quote *core.Record) services.CompanyInfo {
	company := services.DefaultCompany()
	if title := quote.GetString("company_title"); title != "" {
		company.Title = title
	}
	for i, field := range []string{"company_line_1", "company_line_2", "company_line_3"} {
		if line := quote.GetString(field); line != "" && i < len(company.Lines) {
			company.Lines[i] = line
		}
	}
	return company
}

// buildExportData assembles the renderer snapshot for a quote: metadata,
// row copies and the totals computed right now.
func buildExportData(app *pocketbase.PocketBase, quote *core.Record, logoPath string) (services.ExportData, error) {
	itemRecords, err := loadRows(app, "line_items", quote.Id)
	if err != nil {
		return services.ExportData{}, err
	}
	paymentRecords, err := loadRows(app, "installments", quote.Id)
	if err != nil {
		return services.ExportData{}, err
	}

	items := lineItemsFromRecords(itemRecords)
	return services.ExportData{
		Company: companyFromQuote(quote),
		Customer: services.QuoteMeta{
			CustomerName:    quote.GetString("customer_name"),
			CustomerTC:      quote.GetString("customer_tc"),
			CustomerPhone:   quote.GetString("customer_phone"),
			CustomerAddress: quote.GetString("customer_address"),
			Date:            time.Now().Format(services.DateLayout),
		},
		LogoPath: logoPath,
		Items:    items,
		Payments: installmentsFromRecords(paymentRecords),
		Totals:   services.CalcQuoteTotals(items),
	}, nil
}

// buildQuotePageData assembles the view model for the form page.
func buildQuotePageData(app *pocketbase.PocketBase, quote *core.Record, saveFolder string) (templates.QuotePageData, error) {
	itemRecords, err := loadRows(app, "line_items", quote.Id)
	if err != nil {
		return templates.QuotePageData{}, err
	}
	paymentRecords, err := loadRows(app, "installments", quote.Id)
	if err != nil {
		return templates.QuotePageData{}, err
	}

	data := templates.QuotePageData{
		QuoteID:         quote.Id,
		CompanyTitle:    companyFromQuote(quote).Title,
		CustomerName:    quote.GetString("customer_name"),
		CustomerTC:      quote.GetString("customer_tc"),
		CustomerPhone:   quote.GetString("customer_phone"),
		CustomerAddress: quote.GetString("customer_address"),
		SaveFolder:      saveFolder,
	}

	for i, r := range itemRecords {
		data.Items = append(data.Items, templates.ItemRowView{
			ID:          r.Id,
			Index:       i,
			Description: r.GetString("description"),
			Unit:        r.GetString("unit"),
			Qty:         r.GetString("qty"),
			UnitPrice:   r.GetString("unit_price"),
			Total:       r.GetString("total"),
		})
	}
	for i, r := range paymentRecords {
		data.Payments = append(data.Payments, templates.PaymentRowView{
			ID:        r.Id,
			Index:     i,
			Date:      r.GetString("date"),
			TotalDue:  r.GetString("total_due"),
			Received:  r.GetString("received"),
			Remaining: r.GetString("remaining"),
		})
	}

	totals := services.CalcQuoteTotals(lineItemsFromRecords(itemRecords))
	data.Totals = templates.TotalsView{
		Subtotal:   services.FormatTRY(totals.Subtotal),
		VAT:        services.FormatTRY(totals.VATAmount),
		GrandTotal: services.FormatTRY(totals.GrandTotal),
	}
	return data, nil
}

// renderQuote renders the form, choosing the partial or the full page based
// on the HX-Request header.
func renderQuote(e *core.RequestEvent, data templates.QuotePageData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.QuoteContent(data)
	} else {
		component = templates.QuotePage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// parseSelection reads the checked row indices from the posted form.
func parseSelection(e *core.RequestEvent) []int {
	if err := e.Request.ParseForm(); err != nil {
		return nil
	}
	var selection []int
	for _, v := range e.Request.PostForm["selected"] {
		var idx int
		if _, err := fmt.Sscanf(v, "%d", &idx); err == nil {
			selection = append(selection, idx)
		}
	}
	return selection
}
