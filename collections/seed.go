package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// Seed ensures a working quote exists so the form has something to open on
// first launch. The company header starts from the built-in defaults; the
// operator can change it per quote.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("quotes collection not found: %w", err)
	}

	records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
	if err == nil && len(records) > 0 {
		return nil
	}

	company := services.DefaultCompany()
	record := core.NewRecord(col)
	record.Set("customer_name", "")
	record.Set("company_title", company.Title)
	record.Set("company_line_1", company.Lines[0])
	record.Set("company_line_2", company.Lines[1])
	record.Set("company_line_3", company.Lines[2])

	if err := app.Save(record); err != nil {
		return fmt.Errorf("create initial quote: %w", err)
	}
	return nil
}
