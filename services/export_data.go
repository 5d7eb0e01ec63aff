package services

import "strings"

// DescriptionWrapWidth is the column width, in characters, at which line
// item descriptions word-wrap in the rendered document.
const DescriptionWrapWidth = 45

// CompanyInfo carries the header lines printed at the top of the document.
type CompanyInfo struct {
	Title string
	Lines []string
}

// DefaultCompany returns the company header the form ships with. The seed
// data uses it; the operator can override the fields per quote.
func DefaultCompany() CompanyInfo {
	return CompanyInfo{
		Title: "EF YAPI DEKORASYON",
		Lines: []string{
			"Firma: EF Yapı",
			"Firma Sahibi: Fatih AYDIN      Tel: 0537 517 41 19",
			"Adres: İbnisina Mahallesi Serkan Sokak No:5/1    E-mail: efyapi0@gmail.com",
		},
	}
}

// QuoteMeta is the customer block of the document. The fields are opaque
// text; only the name is ever validated (saving requires it non-empty).
type QuoteMeta struct {
	CustomerName    string
	CustomerTC      string
	CustomerPhone   string
	CustomerAddress string
	Date            string
}

// ExportData is the snapshot a renderer reads: metadata plus copies of the
// table rows and the totals computed at the moment of export. Renderers
// never mutate it.
type ExportData struct {
	Company  CompanyInfo
	Customer QuoteMeta
	LogoPath string
	Items    []LineItem
	Payments []Installment
	Totals   QuoteTotals
}

// wrapText breaks text into lines at most width characters long, splitting
// on the last space before the limit when there is one. Width is measured
// in runes so Turkish letters count as one character.
func wrapText(text string, width int) string {
	if text == "" {
		return ""
	}

	var lines []string
	runes := []rune(text)
	for len(runes) > width {
		splitAt := -1
		for i := width; i > 0; i-- {
			if runes[i-1] == ' ' {
				splitAt = i - 1
				break
			}
		}
		if splitAt <= 0 {
			splitAt = width
		}
		lines = append(lines, strings.TrimRight(string(runes[:splitAt]), " "))
		for splitAt < len(runes) && runes[splitAt] == ' ' {
			splitAt++
		}
		runes = runes[splitAt:]
	}
	lines = append(lines, string(runes))
	return strings.Join(lines, "\n")
}
