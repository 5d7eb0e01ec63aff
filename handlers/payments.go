package handlers

import (
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// paymentColumns maps the posted cell column names onto the plan columns.
var paymentColumns = map[string]services.PaymentColumn{
	"date":      services.PayColDate,
	"total_due": services.PayColTotalDue,
	"received":  services.PayColReceived,
	"remaining": services.PayColRemaining,
}

func setInstallmentFields(record *core.Record, row services.Installment) {
	record.Set("date", row.Date)
	record.Set("total_due", row.TotalDue)
	record.Set("received", row.Received)
	record.Set("remaining", row.Remaining)
}

// HandlePaymentAdd returns a handler that appends a blank installment row
// dated today.
func HandlePaymentAdd(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("payments: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		records, err := loadRows(app, "installments", quoteID)
		if err != nil {
			return e.String(500, "Could not load installments")
		}

		plan := services.NewPaymentPlan(installmentsFromRecords(records))
		row := plan.AddRow(time.Now())

		col, err := app.FindCollectionByNameOrId("installments")
		if err != nil {
			return e.String(500, "Installments collection not found")
		}
		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", nextSortOrder(records))
		setInstallmentFields(record, row)
		if err := app.Save(record); err != nil {
			log.Printf("payments: could not save row: %v", err)
			return ErrorToast(e, 500, "Satır eklenemedi")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}

// HandlePaymentDelete returns a handler that removes the checked installment
// rows. An empty selection only warns.
func HandlePaymentDelete(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("payments: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		records, err := loadRows(app, "installments", quoteID)
		if err != nil {
			return e.String(500, "Could not load installments")
		}

		selection := parseSelection(e)
		plan := services.NewPaymentPlan(installmentsFromRecords(records))
		if err := plan.DeleteRows(selection); err != nil {
			WarningToast(e, "Lütfen silmek için bir satır seçin.")
		} else {
			for _, idx := range selection {
				if idx < 0 || idx >= len(records) {
					continue
				}
				if err := app.Delete(records[idx]); err != nil {
					log.Printf("payments: could not delete row %s: %v", records[idx].Id, err)
					return ErrorToast(e, 500, "Satır silinemedi")
				}
			}
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}

// HandlePaymentCellEdit returns a handler that stores an edited installment
// cell. Edits to the received column run the balance cascade: the remaining
// cell is recomputed and a follow-up installment row may be appended.
func HandlePaymentCellEdit(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("payments: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		column, ok := paymentColumns[e.Request.PathValue("column")]
		if !ok {
			return e.String(400, "Unknown column")
		}

		records, err := loadRows(app, "installments", quoteID)
		if err != nil {
			return e.String(500, "Could not load installments")
		}
		rowIdx := -1
		rowID := e.Request.PathValue("rowId")
		for i, r := range records {
			if r.Id == rowID {
				rowIdx = i
				break
			}
		}
		if rowIdx < 0 {
			return e.String(404, "Row not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		plan := services.NewPaymentPlan(installmentsFromRecords(records))
		res, err := plan.EditCell(rowIdx, column, e.Request.PostFormValue("value"), time.Now())
		if err != nil {
			log.Printf("payments: edit cell: %v", err)
			return ErrorToast(e, 400, "Hücre güncellenemedi")
		}

		rows := plan.Rows()
		record := records[rowIdx]
		setInstallmentFields(record, rows[rowIdx])
		if err := app.Save(record); err != nil {
			log.Printf("payments: could not save row %s: %v", record.Id, err)
			return ErrorToast(e, 500, "Hücre kaydedilemedi")
		}

		if res.Appended && len(rows) > len(records) {
			col, err := app.FindCollectionByNameOrId("installments")
			if err != nil {
				return e.String(500, "Installments collection not found")
			}
			appended := core.NewRecord(col)
			appended.Set("quote", quoteID)
			appended.Set("sort_order", nextSortOrder(records))
			setInstallmentFields(appended, rows[len(rows)-1])
			if err := app.Save(appended); err != nil {
				log.Printf("payments: could not save follow-up row: %v", err)
				return ErrorToast(e, 500, "Takip satırı eklenemedi")
			}
		}

		if res.Overpaid {
			WarningToast(e, "Alınacak tutar Genel Toplamdan büyük olamaz!")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}
