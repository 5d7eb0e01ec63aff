package services

import (
	"bytes"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"
)

// placeholderRows is how many blank bordered rows stand in for an empty
// table so the printed layout never collapses.
const placeholderRows = 3

const sheetName = "Teklif"

// excelStyles bundles the style ids used across the sheet.
type excelStyles struct {
	title        int
	companyLine  int
	docTitle     int
	boxLabel     int
	boxValue     int
	header       int
	cellText     int
	cellDesc     int
	cellCenter   int
	cellQty      int
	cellCurrency int
	totalLabel   int
	totalValue   int
	signBold     int
}

// GenerateExcel renders the quote snapshot into a styled A4 workbook and
// returns the file contents as a byte slice. The layout mirrors the printed
// form: centered company header with optional logo, customer box, bordered
// material table, totals block, payment plan table and a signature block.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column widths: index, description (wide), unit (narrow), qty,
	// unit price, total.
	widths := []float64{6, 30, 10, 15, 15, 15}
	columns := []string{"A", "B", "C", "D", "E", "F"}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	// Logo sits top right; a missing or unreadable image never fails the
	// render.
	if data.LogoPath != "" {
		if err := f.AddPicture(sheetName, "F1", data.LogoPath, &excelize.GraphicOptions{
			ScaleX: 0.5,
			ScaleY: 0.5,
		}); err != nil {
			log.Printf("export_excel: could not embed logo %s: %v", data.LogoPath, err)
		}
	}

	r := 1
	r, err = writeCompanyHeader(f, styles, data.Company, r)
	if err != nil {
		return nil, err
	}
	r, err = writeCustomerBox(f, styles, data.Customer, r)
	if err != nil {
		return nil, err
	}
	r = writeMaterialTable(f, styles, data.Items, r)
	r = writeTotalsBlock(f, styles, data.Totals, r)
	r = writePaymentTable(f, styles, data.Payments, r)
	writeSignatureBlock(f, styles, r)

	// Single page width, unconstrained height, portrait A4.
	fitToPage := true
	if err := f.SetSheetProps(sheetName, &excelize.SheetPropsOptions{
		FitToPage: &fitToPage,
	}); err != nil {
		return nil, fmt.Errorf("set sheet props: %w", err)
	}
	orient := "portrait"
	paperA4 := 9
	fitW, fitH := 1, 0
	if err := f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Orientation: &orient,
		Size:        &paperA4,
		FitToWidth:  &fitW,
		FitToHeight: &fitH,
	}); err != nil {
		return nil, fmt.Errorf("set page layout: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	mk := func(style *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = f.NewStyle(style)
		return id
	}

	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right", Vertical: "center"}

	s.title = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: center,
	})
	s.companyLine = mk(&excelize.Style{
		Font:      &excelize.Font{Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	s.docTitle = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: center,
	})
	s.boxLabel = mk(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	s.boxValue = mk(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#ECF0F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	})
	s.header = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F4F4F"}, Pattern: 1},
		Alignment: center,
		Border:    mediumBorders(),
	})
	s.cellText = mk(&excelize.Style{
		Border: mediumBorders(),
	})
	s.cellDesc = mk(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    mediumBorders(),
	})
	s.cellCenter = mk(&excelize.Style{
		Alignment: center,
		Border:    mediumBorders(),
	})
	// NumFmt 2 is "0.00", NumFmt 4 is "#,##0.00".
	s.cellQty = mk(&excelize.Style{
		NumFmt:    2,
		Alignment: center,
		Border:    mediumBorders(),
	})
	s.cellCurrency = mk(&excelize.Style{
		NumFmt:    4,
		Alignment: right,
		Border:    mediumBorders(),
	})
	s.totalLabel = mk(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#ECF0F1"}, Pattern: 1},
		Border:    mediumBorders(),
	})
	s.totalValue = mk(&excelize.Style{
		NumFmt:    4,
		Alignment: right,
		Border:    mediumBorders(),
	})
	s.signBold = mk(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	if err != nil {
		return excelStyles{}, fmt.Errorf("create styles: %w", err)
	}
	return s, nil
}

// writeCompanyHeader writes the merged centered company title and the
// free-text company lines, returning the next free row.
func writeCompanyHeader(f *excelize.File, s excelStyles, company CompanyInfo, r int) (int, error) {
	if err := mergeRow(f, r); err != nil {
		return r, err
	}
	f.SetCellValue(sheetName, cell("A", r), sanitizeExcelCell(company.Title))
	f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.title)
	r++

	for _, line := range company.Lines {
		if err := mergeRow(f, r); err != nil {
			return r, err
		}
		f.SetCellValue(sheetName, cell("A", r), sanitizeExcelCell(line))
		f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.companyLine)
		r++
	}
	r++

	if err := mergeRow(f, r); err != nil {
		return r, err
	}
	f.SetCellValue(sheetName, cell("A", r), "FİYAT TEKLİFİ")
	f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.docTitle)
	r++

	return r, nil
}

// writeCustomerBox writes the grey customer information block: label in
// column B, value merged across C..F.
func writeCustomerBox(f *excelize.File, s excelStyles, meta QuoteMeta, r int) (int, error) {
	rows := []struct {
		label string
		value string
	}{
		{"MÜŞTERİ ADI :", meta.CustomerName},
		{"T.C. :", meta.CustomerTC},
		{"TEL :", meta.CustomerPhone},
		{"ADRES :", meta.CustomerAddress},
		{"TARİH :", meta.Date},
	}

	for _, row := range rows {
		f.SetCellValue(sheetName, cell("B", r), row.label)
		f.SetCellStyle(sheetName, cell("B", r), cell("B", r), s.boxLabel)
		if err := f.MergeCell(sheetName, cell("C", r), cell("F", r)); err != nil {
			return r, fmt.Errorf("merge customer box row %d: %w", r, err)
		}
		f.SetCellValue(sheetName, cell("C", r), sanitizeExcelCell(row.value))
		f.SetCellStyle(sheetName, cell("C", r), cell("F", r), s.boxValue)
		r++
	}
	return r + 1, nil
}

// writeMaterialTable writes the bordered line item table. An empty table
// renders as placeholder rows so the print layout keeps its shape.
func writeMaterialTable(f *excelize.File, s excelStyles, items []LineItem, r int) int {
	headers := []string{"NO", "AÇIKLAMA", "BİRİM", "MİKTAR", "BİRİM FİYATI", "TOPLAM FİYATI"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colLetter(i), r), h)
	}
	f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.header)
	r++

	if len(items) == 0 {
		for i := 0; i < placeholderRows; i++ {
			f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.cellText)
			r++
		}
		return r
	}

	for idx, it := range items {
		f.SetCellValue(sheetName, cell("A", r), idx+1)
		f.SetCellStyle(sheetName, cell("A", r), cell("A", r), s.cellCenter)

		f.SetCellValue(sheetName, cell("B", r), wrapText(sanitizeExcelCell(it.Description), DescriptionWrapWidth))
		f.SetCellStyle(sheetName, cell("B", r), cell("B", r), s.cellDesc)

		f.SetCellValue(sheetName, cell("C", r), sanitizeExcelCell(it.Unit))
		f.SetCellStyle(sheetName, cell("C", r), cell("C", r), s.cellCenter)

		setAmountCell(f, cell("D", r), it.Qty, s.cellQty, s.cellCenter)
		setAmountCell(f, cell("E", r), it.UnitPrice, s.cellCurrency, s.cellText)
		setAmountCell(f, cell("F", r), it.Total, s.cellCurrency, s.cellText)
		r++
	}
	return r
}

// writeTotalsBlock writes the subtotal / VAT / grand total rows under the
// material table, labels in column E and values in column F.
func writeTotalsBlock(f *excelize.File, s excelStyles, totals QuoteTotals, r int) int {
	rows := []struct {
		label string
		value float64
	}{
		{"GENEL Toplam:", totals.Subtotal},
		{"KDV'siz Toplam:", totals.Subtotal},
		{"KDV (%20) Tutarı:", totals.VATAmount},
		{"KDV'li Toplam:", totals.GrandTotal},
	}
	for _, row := range rows {
		f.SetCellValue(sheetName, cell("E", r), row.label)
		f.SetCellStyle(sheetName, cell("E", r), cell("E", r), s.totalLabel)
		f.SetCellValue(sheetName, cell("F", r), row.value)
		f.SetCellStyle(sheetName, cell("F", r), cell("F", r), s.totalValue)
		r++
	}
	return r + 1
}

// writePaymentTable writes the bordered installment table.
func writePaymentTable(f *excelize.File, s excelStyles, payments []Installment, r int) int {
	f.SetCellValue(sheetName, cell("A", r), "ÖDEME PLANI")
	f.SetCellStyle(sheetName, cell("A", r), cell("A", r), s.boxLabel)
	r++

	headers := []string{"NO", "TARİH", "TOPLAM", "ALINACAK TUTAR", "KALACAK TUTAR", "AÇIKLAMALAR"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colLetter(i), r), h)
	}
	f.SetCellStyle(sheetName, cell("A", r), cell("F", r), s.header)
	r++

	if len(payments) == 0 {
		for i := 0; i < placeholderRows; i++ {
			f.SetCellStyle(sheetName, cell("A", r), cell("E", r), s.cellText)
			r++
		}
		return r
	}

	for idx, p := range payments {
		f.SetCellValue(sheetName, cell("A", r), idx+1)
		f.SetCellStyle(sheetName, cell("A", r), cell("A", r), s.cellCenter)

		f.SetCellValue(sheetName, cell("B", r), sanitizeExcelCell(p.Date))
		f.SetCellStyle(sheetName, cell("B", r), cell("B", r), s.cellCenter)

		setAmountCell(f, cell("C", r), p.TotalDue, s.cellCurrency, s.cellText)
		setAmountCell(f, cell("D", r), p.Received, s.cellCurrency, s.cellText)
		setAmountCell(f, cell("E", r), p.Remaining, s.cellCurrency, s.cellText)
		r++
	}
	return r
}

// writeSignatureBlock writes the two-column customer / company
// representative block with date and signature placeholders.
func writeSignatureBlock(f *excelize.File, s excelStyles, r int) {
	r += 2
	f.SetCellValue(sheetName, cell("A", r), "MÜŞTERİ")
	f.SetCellStyle(sheetName, cell("A", r), cell("A", r), s.signBold)
	f.SetCellValue(sheetName, cell("E", r), "FİRMA YETKİLİSİ")
	f.SetCellStyle(sheetName, cell("E", r), cell("E", r), s.signBold)

	r += 3
	f.SetCellValue(sheetName, cell("A", r), "TARİH : ________")
	f.SetCellValue(sheetName, cell("E", r), "TARİH : ________")

	r += 2
	f.SetCellValue(sheetName, cell("A", r), "İMZA : ________")
	f.SetCellValue(sheetName, cell("E", r), "İMZA : ________")
}

// setAmountCell writes an amount cell: parseable text becomes a number with
// the numeric style, anything else is written verbatim so manual entries
// still appear in the document.
func setAmountCell(f *excelize.File, ref, text string, numStyle, rawStyle int) {
	v, err := ParseAmount(text)
	if err != nil {
		f.SetCellValue(sheetName, ref, sanitizeExcelCell(text))
		f.SetCellStyle(sheetName, ref, ref, rawStyle)
		return
	}
	f.SetCellValue(sheetName, ref, v)
	f.SetCellStyle(sheetName, ref, ref, numStyle)
}

func mergeRow(f *excelize.File, r int) error {
	if err := f.MergeCell(sheetName, cell("A", r), cell("F", r)); err != nil {
		return fmt.Errorf("merge row %d: %w", r, err)
	}
	return nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func colLetter(i int) string {
	return string(rune('A' + i))
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// mediumBorders returns borders on all four sides matching the printed
// form's weight.
func mediumBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 2, // medium
		}
	}
	return borders
}
