package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// materialColumns maps the posted cell column names onto the table columns.
var materialColumns = map[string]services.MaterialColumn{
	"description": services.ColDescription,
	"unit":        services.ColUnit,
	"qty":         services.ColQty,
	"unit_price":  services.ColUnitPrice,
	"total":       services.ColTotal,
}

// nextSortOrder returns the sort_order for a row appended after records.
func nextSortOrder(records []*core.Record) int {
	if len(records) == 0 {
		return 0
	}
	return records[len(records)-1].GetInt("sort_order") + 1
}

// HandleLineItemAdd returns a handler that appends a blank material row.
func HandleLineItemAdd(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("line_items: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		records, err := loadRows(app, "line_items", quoteID)
		if err != nil {
			log.Printf("line_items: could not load rows: %v", err)
			return e.String(500, "Could not load line items")
		}

		table := services.NewLineItemTable(lineItemsFromRecords(records))
		row := table.AddRow()

		col, err := app.FindCollectionByNameOrId("line_items")
		if err != nil {
			return e.String(500, "Line items collection not found")
		}
		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", nextSortOrder(records))
		record.Set("description", row.Description)
		record.Set("unit", row.Unit)
		record.Set("qty", row.Qty)
		record.Set("unit_price", row.UnitPrice)
		record.Set("total", row.Total)
		if err := app.Save(record); err != nil {
			log.Printf("line_items: could not save row: %v", err)
			return ErrorToast(e, 500, "Satır eklenemedi")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}

// HandleLineItemDelete returns a handler that removes the checked material
// rows. An empty selection only warns and changes nothing.
func HandleLineItemDelete(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("line_items: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		records, err := loadRows(app, "line_items", quoteID)
		if err != nil {
			return e.String(500, "Could not load line items")
		}

		selection := parseSelection(e)
		table := services.NewLineItemTable(lineItemsFromRecords(records))
		if err := table.DeleteRows(selection); err != nil {
			WarningToast(e, "Lütfen silmek için bir satır seçin.")
		} else {
			for _, idx := range selection {
				if idx < 0 || idx >= len(records) {
					continue
				}
				if err := app.Delete(records[idx]); err != nil {
					log.Printf("line_items: could not delete row %s: %v", records[idx].Id, err)
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

// HandleLineItemCellEdit returns a handler that stores an edited material
// cell and recomputes the row total for quantity and unit price edits.
func HandleLineItemCellEdit(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("line_items: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		column, ok := materialColumns[e.Request.PathValue("column")]
		if !ok {
			return e.String(400, "Unknown column")
		}

		records, err := loadRows(app, "line_items", quoteID)
		if err != nil {
			return e.String(500, "Could not load line items")
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

		table := services.NewLineItemTable(lineItemsFromRecords(records))
		if err := table.EditCell(rowIdx, column, e.Request.PostFormValue("value")); err != nil {
			log.Printf("line_items: edit cell: %v", err)
			return ErrorToast(e, 400, "Hücre güncellenemedi")
		}

		row := table.Rows()[rowIdx]
		record := records[rowIdx]
		record.Set("description", row.Description)
		record.Set("unit", row.Unit)
		record.Set("qty", row.Qty)
		record.Set("unit_price", row.UnitPrice)
		record.Set("total", row.Total)
		if err := app.Save(record); err != nil {
			log.Printf("line_items: could not save row %s: %v", record.Id, err)
			return ErrorToast(e, 500, "Hücre kaydedilemedi")
		}

		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}
