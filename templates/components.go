package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuotePage renders the full quote form page.
func QuotePage(data QuotePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="tr">
<head>
<meta charset="utf-8">
<title>%s - Fiyat Teklif Uygulaması</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
body { font-family: Arial, sans-serif; background: #f0f0f0; margin: 0; padding: 16px; }
h1 { color: #2c3e50; text-align: center; }
h2 { color: #7f8c8d; text-align: center; font-weight: normal; font-size: 1rem; }
fieldset { background: #fff; border: 1px solid #ccc; margin-bottom: 12px; }
table { border-collapse: collapse; width: 100%%; background: #fff; }
th { background: #2f4f4f; color: #fff; padding: 4px 8px; }
td { border: 1px solid #999; padding: 2px; }
td input { border: none; width: 100%%; box-sizing: border-box; }
.num { text-align: right; }
.totals { font-weight: bold; color: #2c3e50; }
button { padding: 6px 14px; margin-right: 6px; cursor: pointer; }
.add { background: #3498db; color: #fff; border: none; }
.del { background: #e74c3c; color: #fff; border: none; }
.save { background: #27ae60; color: #fff; border: none; }
</style>
</head>
<body>
<h1>%s</h1>
<h2>Fiyat Teklif Uygulaması (Excel Çıktısı)</h2>
`, templ.EscapeString(data.CompanyTitle), templ.EscapeString(data.CompanyTitle)); err != nil {
			return err
		}
		if err := QuoteContent(data).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// QuoteContent renders the swappable body of the form: customer block,
// both tables, totals and the action buttons. HTMX edits re-render this
// fragment.
func QuoteContent(data QuotePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="quote-content">
<fieldset>
<legend>Müşteri Bilgileri</legend>
<form hx-post="/quotes/%s/customer" hx-trigger="change" hx-target="#quote-content" hx-swap="outerHTML">
<label>Ad Soyad: <input name="customer_name" value="%s"></label>
<label>T.C. Kimlik No: <input name="customer_tc" value="%s"></label>
<label>Telefon: <input name="customer_phone" value="%s"></label>
<label>Adres: <input name="customer_address" size="60" value="%s"></label>
</form>
</fieldset>
`,
			data.QuoteID,
			templ.EscapeString(data.CustomerName),
			templ.EscapeString(data.CustomerTC),
			templ.EscapeString(data.CustomerPhone),
			templ.EscapeString(data.CustomerAddress),
		); err != nil {
			return err
		}

		if err := MaterialTable(data).Render(ctx, w); err != nil {
			return err
		}
		if err := PaymentTable(data).Render(ctx, w); err != nil {
			return err
		}
		if err := TotalsPanel(data.Totals).Render(ctx, w); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<fieldset>
<legend>Çıktı</legend>
<a href="/quotes/%s/export/xlsx"><button type="button" class="add">Excel Önizleme</button></a>
<a href="/quotes/%s/export/pdf"><button type="button" class="add">PDF Önizleme</button></a>
<button class="save" hx-post="/quotes/%s/save" hx-target="#quote-content" hx-swap="outerHTML">Excel Kaydet</button>
<span>Kayıt Klasörü: %s</span>
<form class="folder" hx-post="/settings/folder" hx-target="#quote-content" hx-swap="outerHTML">
<input name="folder" placeholder="Kayıt klasörü yolu">
<button>Klasör Seç</button>
</form>
<button hx-post="/settings/reset-folder" hx-target="#quote-content" hx-swap="outerHTML">Varsayılan Klasöre Dön</button>
</fieldset>
</div>
`,
			data.QuoteID, data.QuoteID, data.QuoteID,
			templ.EscapeString(data.SaveFolder),
		); err != nil {
			return err
		}
		return nil
	})
}

// MaterialTable renders the line item table with per-cell HTMX edits.
func MaterialTable(data QuotePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<fieldset>
<legend>MALZEME TABLOSU</legend>
<form hx-post="/quotes/%s/items/delete" hx-target="#quote-content" hx-swap="outerHTML">
<table>
<tr><th></th><th>NO</th><th>Ürün/İşçilik Adı</th><th>Birim</th><th>Miktar</th><th>Birim Fiyat</th><th>Toplam</th></tr>
`, data.QuoteID); err != nil {
			return err
		}

		for _, row := range data.Items {
			if _, err := fmt.Fprintf(w, `<tr>
<td><input type="checkbox" name="selected" value="%d"></td>
<td>%d</td>
%s%s%s%s<td class="num">%s</td>
</tr>
`,
				row.Index, row.Index+1,
				cellInput(data.QuoteID, "items", row.ID, "description", row.Description),
				cellInput(data.QuoteID, "items", row.ID, "unit", row.Unit),
				cellInput(data.QuoteID, "items", row.ID, "qty", row.Qty),
				cellInput(data.QuoteID, "items", row.ID, "unit_price", row.UnitPrice),
				templ.EscapeString(row.Total),
			); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</table>
<button type="button" class="add" hx-post="/quotes/%s/items" hx-target="#quote-content" hx-swap="outerHTML">Satır Ekle</button>
<button type="submit" class="del">Satır Sil</button>
</form>
</fieldset>
`, data.QuoteID)
		return err
	})
}

// PaymentTable renders the installment table. The received column posts to
// the cascade endpoint.
func PaymentTable(data QuotePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<fieldset>
<legend>ÖDEME PLANI</legend>
<form hx-post="/quotes/%s/payments/delete" hx-target="#quote-content" hx-swap="outerHTML">
<table>
<tr><th></th><th>NO</th><th>Tarih</th><th>Genel Toplam</th><th>Alınacak Tutar</th><th>Kalan Tutar</th></tr>
`, data.QuoteID); err != nil {
			return err
		}

		for _, row := range data.Payments {
			if _, err := fmt.Fprintf(w, `<tr>
<td><input type="checkbox" name="selected" value="%d"></td>
<td>%d</td>
%s%s%s<td class="num">%s</td>
</tr>
`,
				row.Index, row.Index+1,
				cellInput(data.QuoteID, "payments", row.ID, "date", row.Date),
				cellInput(data.QuoteID, "payments", row.ID, "total_due", row.TotalDue),
				cellInput(data.QuoteID, "payments", row.ID, "received", row.Received),
				templ.EscapeString(row.Remaining),
			); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `</table>
<button type="button" class="add" hx-post="/quotes/%s/payments" hx-target="#quote-content" hx-swap="outerHTML">Ödeme Satırı Ekle</button>
<button type="submit" class="del">Satır Sil</button>
</form>
</fieldset>
`, data.QuoteID)
		return err
	})
}

// TotalsPanel renders the derived totals strip.
func TotalsPanel(totals TotalsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<fieldset>
<legend>Genel Toplam</legend>
<span class="totals">Ara Toplam: %s</span>
<span class="totals">KDV (%%20): %s</span>
<span class="totals">KDV Dahil Toplam: %s</span>
</fieldset>
`,
			templ.EscapeString(totals.Subtotal),
			templ.EscapeString(totals.VAT),
			templ.EscapeString(totals.GrandTotal),
		)
		return err
	})
}

// cellInput renders an editable table cell posting its new value on change.
func cellInput(quoteID, kind, rowID, column, value string) string {
	return fmt.Sprintf(
		`<td><input name="value" value="%s" hx-post="/quotes/%s/%s/%s/cell/%s" hx-trigger="change" hx-target="#quote-content" hx-swap="outerHTML"></td>`,
		templ.EscapeString(value), quoteID, kind, rowID, column,
	)
}
