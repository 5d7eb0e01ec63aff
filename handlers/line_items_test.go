package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quoteform/testhelpers"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func TestHandleLineItemAdd_CreatesDefaultRow(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Satır Testi")
	settings := newTestSettings(t)

	handler := HandleLineItemAdd(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items", url.Values{})
	req.SetPathValue("quoteId", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	records, err := loadRows(app, "line_items", quote.Id)
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 row, got %d", len(records))
	}
	row := records[0]
	if got := row.GetString("unit"); got != "Adet" {
		t.Errorf("unit = %q, want Adet", got)
	}
	if got := row.GetString("qty"); got != "1" {
		t.Errorf("qty = %q, want 1", got)
	}
	if got := row.GetString("unit_price"); got != "0.00" {
		t.Errorf("unit_price = %q, want 0.00", got)
	}
	if got := row.GetString("total"); got != "0.00" {
		t.Errorf("total = %q, want 0.00", got)
	}
}

func TestHandleLineItemDelete_EmptySelectionWarns(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Seçimsiz")
	testhelpers.CreateTestLineItem(t, app, quote.Id, 0, "Kalıcı Satır", "Adet", "1", "10.00", "10.00")
	settings := newTestSettings(t)

	handler := HandleLineItemDelete(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items/delete", url.Values{})
	req.SetPathValue("quoteId", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if !strings.Contains(rec.Header().Get("HX-Trigger"), "Lütfen silmek için bir satır seçin.") {
		t.Error("expected selection warning toast")
	}
	records, _ := loadRows(app, "line_items", quote.Id)
	if len(records) != 1 {
		t.Errorf("expected row to survive empty delete, got %d rows", len(records))
	}
}

func TestHandleLineItemDelete_RemovesSelectedRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Silme Testi")
	testhelpers.CreateTestLineItem(t, app, quote.Id, 0, "Birinci", "Adet", "1", "10.00", "10.00")
	keep := testhelpers.CreateTestLineItem(t, app, quote.Id, 1, "İkinci", "Adet", "1", "20.00", "20.00")
	testhelpers.CreateTestLineItem(t, app, quote.Id, 2, "Üçüncü", "Adet", "1", "30.00", "30.00")
	settings := newTestSettings(t)

	form := url.Values{"selected": []string{"0", "2"}}
	handler := HandleLineItemDelete(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items/delete", form)
	req.SetPathValue("quoteId", quote.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	records, err := loadRows(app, "line_items", quote.Id)
	if err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 row to remain, got %d", len(records))
	}
	if records[0].Id != keep.Id {
		t.Errorf("expected middle row to survive, got %q", records[0].GetString("description"))
	}
}

func TestHandleLineItemCellEdit_QtyRecomputesTotal(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Hücre Testi")
	row := testhelpers.CreateTestLineItem(t, app, quote.Id, 0, "Fayans", "m2", "1", "250.00", "250.00")
	settings := newTestSettings(t)

	handler := HandleLineItemCellEdit(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items/"+row.Id+"/cell/qty", url.Values{"value": []string{"4"}})
	req.SetPathValue("quoteId", quote.Id)
	req.SetPathValue("rowId", row.Id)
	req.SetPathValue("column", "qty")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	updated, err := app.FindRecordById("line_items", row.Id)
	if err != nil {
		t.Fatalf("reload row: %v", err)
	}
	if got := updated.GetString("qty"); got != "4" {
		t.Errorf("qty = %q, want 4", got)
	}
	if got := updated.GetString("total"); got != "1000.00" {
		t.Errorf("total = %q, want 1000.00", got)
	}
}

func TestHandleLineItemCellEdit_CurrencyGlyphTolerated(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Sembol Testi")
	row := testhelpers.CreateTestLineItem(t, app, quote.Id, 0, "Boya", "Adet", "2", "0.00", "0.00")
	settings := newTestSettings(t)

	handler := HandleLineItemCellEdit(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items/"+row.Id+"/cell/unit_price", url.Values{"value": []string{"150 ₺"}})
	req.SetPathValue("quoteId", quote.Id)
	req.SetPathValue("rowId", row.Id)
	req.SetPathValue("column", "unit_price")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	updated, err := app.FindRecordById("line_items", row.Id)
	if err != nil {
		t.Fatalf("reload row: %v", err)
	}
	// The cell keeps the typed text, the total uses the parsed amount.
	if got := updated.GetString("unit_price"); got != "150 ₺" {
		t.Errorf("unit_price = %q, want verbatim text", got)
	}
	if got := updated.GetString("total"); got != "300.00" {
		t.Errorf("total = %q, want 300.00", got)
	}
}

func TestHandleLineItemCellEdit_UnknownColumn(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	quote := testhelpers.CreateTestQuote(t, app, "Kolon Testi")
	row := testhelpers.CreateTestLineItem(t, app, quote.Id, 0, "Alçı", "Adet", "1", "5.00", "5.00")
	settings := newTestSettings(t)

	handler := HandleLineItemCellEdit(app, settings, t.TempDir())
	req := postForm("/quotes/"+quote.Id+"/items/"+row.Id+"/cell/bogus", url.Values{"value": []string{"x"}})
	req.SetPathValue("quoteId", quote.Id)
	req.SetPathValue("rowId", row.Id)
	req.SetPathValue("column", "bogus")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
