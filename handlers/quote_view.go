package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// HandleHome returns a handler that redirects to the most recent quote,
// creating one when the database is empty.
func HandleHome(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_view: quotes collection missing: %v", err)
			return e.String(500, "Quotes collection not found")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
		if err != nil {
			log.Printf("quote_view: could not list quotes: %v", err)
			return e.String(500, "Could not list quotes")
		}

		var quote *core.Record
		if len(records) > 0 {
			quote = records[0]
		} else {
			quote = core.NewRecord(col)
			company := services.DefaultCompany()
			quote.Set("company_title", company.Title)
			quote.Set("company_line_1", company.Lines[0])
			quote.Set("company_line_2", company.Lines[1])
			quote.Set("company_line_3", company.Lines[2])
			if err := app.Save(quote); err != nil {
				log.Printf("quote_view: could not create quote: %v", err)
				return e.String(500, "Could not create quote")
			}
		}

		return redirect(e, "/quotes/"+quote.Id)
	}
}

// HandleQuoteView returns a handler that renders the quote form page.
func HandleQuoteView(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		if quoteID == "" {
			return e.String(400, "Missing quote ID")
		}

		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("quote_view: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			log.Printf("quote_view: could not load quote %s: %v", quoteID, err)
			return e.String(500, "Could not load quote")
		}

		return renderQuote(e, data)
	}
}

// HandleCustomerUpdate returns a handler that saves the customer fields from
// the top form.
func HandleCustomerUpdate(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("customer_update: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		quote.Set("customer_name", e.Request.PostFormValue("customer_name"))
		quote.Set("customer_tc", e.Request.PostFormValue("customer_tc"))
		quote.Set("customer_phone", e.Request.PostFormValue("customer_phone"))
		quote.Set("customer_address", e.Request.PostFormValue("customer_address"))

		if err := app.Save(quote); err != nil {
			log.Printf("customer_update: could not save quote %s: %v", quoteID, err)
			return ErrorToast(e, 500, "Müşteri bilgileri kaydedilemedi")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			log.Printf("customer_update: could not reload quote %s: %v", quoteID, err)
			return e.String(500, "Could not load quote")
		}

		SetToast(e, "success", "Müşteri bilgileri kaydedildi")
		return renderQuote(e, data)
	}
}
