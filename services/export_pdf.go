package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the same quote snapshot as GenerateExcel into a PDF,
// for customers who cannot open a workbook. It returns the raw PDF bytes.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		Build()

	m := maroto.New(cfg)

	addPDFHeader(m, data)
	addPDFCustomerBlock(m, data.Customer)
	addPDFMaterialTable(m, data.Items)
	addPDFTotals(m, data.Totals)
	addPDFPaymentTable(m, data.Payments)
	addPDFSignatures(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addPDFHeader(m core.Maroto, data ExportData) {
	if data.LogoPath != "" {
		m.AddRows(
			row.New(16).Add(
				col.New(12).Add(
					image.NewFromFile(data.LogoPath, props.Rect{
						Center:  true,
						Percent: 90,
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(data.Company.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	for _, line := range data.Company.Lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{Size: 9, Align: align.Left}),
				),
			),
		)
	}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New("FİYAT TEKLİFİ", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
}

func addPDFCustomerBlock(m core.Maroto, meta QuoteMeta) {
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

	boxFill := &props.Cell{BackgroundColor: &props.Color{Red: 236, Green: 240, Blue: 241}}
	for _, r := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(
					text.New(r.label, props.Text{Size: 9, Style: fontstyle.Bold}),
				),
				col.New(9).Add(
					text.New(r.value, props.Text{Size: 9}),
				).WithStyle(boxFill),
			),
		)
	}
	m.AddRows(row.New(4))
}

// pdfHeaderCell returns the shared header cell fill and text props.
func pdfHeaderCell() (*props.Cell, props.Text) {
	bg := &props.Cell{BackgroundColor: &props.Color{Red: 47, Green: 79, Blue: 79}}
	txt := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	return bg, txt
}

func addPDFMaterialTable(m core.Maroto, items []LineItem) {
	headerCell, headerText := pdfHeaderCell()

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("NO", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("AÇIKLAMA", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("BİRİM", headerText)).WithStyle(headerCell),
			col.New(1).Add(text.New("MİKTAR", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("BİRİM FİYATI", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("TOPLAM FİYATI", headerText)).WithStyle(headerCell),
		),
	)

	cellText := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}
	cellCenter := props.Text{Size: 9, Align: align.Center}

	if len(items) == 0 {
		for i := 0; i < placeholderRows; i++ {
			m.AddRows(row.New(6).Add(col.New(12)))
		}
		return
	}

	for idx, it := range items {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", idx+1), cellCenter)),
				col.New(5).Add(text.New(it.Description, cellText)),
				col.New(1).Add(text.New(it.Unit, cellCenter)),
				col.New(1).Add(text.New(it.Qty, cellCenter)),
				col.New(2).Add(text.New(formatPDFAmount(it.UnitPrice), cellRight)),
				col.New(2).Add(text.New(formatPDFAmount(it.Total), cellRight)),
			),
		)
	}
}

func addPDFTotals(m core.Maroto, totals QuoteTotals) {
	rows := []struct {
		label string
		value float64
	}{
		{"KDV'siz Toplam:", totals.Subtotal},
		{"KDV (%20) Tutarı:", totals.VATAmount},
		{"KDV'li Toplam:", totals.GrandTotal},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(8),
				col.New(2).Add(
					text.New(r.label, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
				),
				col.New(2).Add(
					text.New(FormatTRY(r.value), props.Text{Size: 9, Align: align.Right}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

func addPDFPaymentTable(m core.Maroto, payments []Installment) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("ÖDEME PLANI", props.Text{Size: 10, Style: fontstyle.Bold}),
			),
		),
	)

	headerCell, headerText := pdfHeaderCell()
	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("NO", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("TARİH", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("TOPLAM", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("ALINACAK TUTAR", headerText)).WithStyle(headerCell),
			col.New(3).Add(text.New("KALACAK TUTAR", headerText)).WithStyle(headerCell),
		),
	)

	cellRight := props.Text{Size: 9, Align: align.Right}
	cellCenter := props.Text{Size: 9, Align: align.Center}

	if len(payments) == 0 {
		for i := 0; i < placeholderRows; i++ {
			m.AddRows(row.New(6).Add(col.New(12)))
		}
		return
	}

	for idx, p := range payments {
		m.AddRows(
			row.New(6).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", idx+1), cellCenter)),
				col.New(2).Add(text.New(p.Date, cellCenter)),
				col.New(3).Add(text.New(formatPDFAmount(p.TotalDue), cellRight)),
				col.New(3).Add(text.New(formatPDFAmount(p.Received), cellRight)),
				col.New(3).Add(text.New(formatPDFAmount(p.Remaining), cellRight)),
			),
		)
	}
}

func addPDFSignatures(m core.Maroto) {
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(4).Add(text.New("MÜŞTERİ", props.Text{Size: 10, Style: fontstyle.Bold})),
			col.New(4),
			col.New(4).Add(text.New("FİRMA YETKİLİSİ", props.Text{Size: 10, Style: fontstyle.Bold})),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("TARİH : ________", props.Text{Size: 9})),
			col.New(4),
			col.New(4).Add(text.New("TARİH : ________", props.Text{Size: 9})),
		),
	)
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("İMZA : ________", props.Text{Size: 9})),
			col.New(4),
			col.New(4).Add(text.New("İMZA : ________", props.Text{Size: 9})),
		),
	)
}

// formatPDFAmount renders a parseable cell in lira notation and keeps
// malformed text verbatim, matching the workbook renderer's policy.
func formatPDFAmount(s string) string {
	v, err := ParseAmount(s)
	if err != nil {
		return s
	}
	return FormatTRY(v)
}
