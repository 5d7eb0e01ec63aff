// Package testhelpers provides utilities for testing the PocketBase-backed
// quote form.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test
// finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuote creates a quote record with the given customer name.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("company_title", "EF YAPI DEKORASYON")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}
	return record
}

// CreateTestLineItem creates a line item row on the given quote.
func CreateTestLineItem(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, description, unit, qty, unitPrice, total string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("line_items")
	if err != nil {
		t.Fatalf("failed to find line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("unit", unit)
	record.Set("qty", qty)
	record.Set("unit_price", unitPrice)
	record.Set("total", total)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test line item: %v", err)
	}
	return record
}

// CreateTestInstallment creates an installment row on the given quote.
func CreateTestInstallment(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, date, totalDue, received, remaining string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("installments")
	if err != nil {
		t.Fatalf("failed to find installments collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("date", date)
	record.Set("total_due", totalDue)
	record.Set("received", received)
	record.Set("remaining", remaining)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test installment: %v", err)
	}
	return record
}
