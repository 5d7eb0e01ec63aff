package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// HandleExportExcel returns a handler that streams the rendered quote form
// as an .xlsx download.
func HandleExportExcel(app *pocketbase.PocketBase, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("export: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		data, err := buildExportData(app, quote, services.FindLogo(baseDir))
		if err != nil {
			log.Printf("export: could not load quote %s: %v", quoteID, err)
			return e.String(500, "Could not load quote")
		}

		document, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export: could not generate excel for %s: %v", quoteID, err)
			return e.String(500, "Could not generate Excel file")
		}

		filename := exportFilename(data.Customer.CustomerName, "xlsx")
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(document)
		return err
	}
}

// HandleExportPDF returns a handler that streams the rendered quote form as
// a PDF download.
func HandleExportPDF(app *pocketbase.PocketBase, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("export: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		data, err := buildExportData(app, quote, services.FindLogo(baseDir))
		if err != nil {
			log.Printf("export: could not load quote %s: %v", quoteID, err)
			return e.String(500, "Could not load quote")
		}

		document, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export: could not generate pdf for %s: %v", quoteID, err)
			return e.String(500, "Could not generate PDF file")
		}

		filename := exportFilename(data.Customer.CustomerName, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(document)
		return err
	}
}

// HandleSaveQuote returns a handler that writes the rendered Excel form into
// the customer's folder under the configured save directory and opens it in
// the system viewer.
func HandleSaveQuote(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("quoteId")
		quote, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			log.Printf("export: could not find quote %s: %v", quoteID, err)
			return e.String(404, "Quote not found")
		}

		data, err := buildExportData(app, quote, services.FindLogo(baseDir))
		if err != nil {
			log.Printf("export: could not load quote %s: %v", quoteID, err)
			return e.String(500, "Could not load quote")
		}

		document, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export: could not generate excel for %s: %v", quoteID, err)
			return ErrorToast(e, 500, "Excel dosyası oluşturulamadı")
		}

		path, err := services.SaveQuote(settings.SaveFolder(baseDir), data.Customer.CustomerName, document, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrNoCustomerName) {
				WarningToast(e, "Lütfen müşteri adı soyadı girin.")
				pageData, derr := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
				if derr != nil {
					return e.String(500, "Could not load quote")
				}
				return renderQuote(e, pageData)
			}
			log.Printf("export: could not save quote %s: %v", quoteID, err)
			return ErrorToast(e, 500, "Dosya kaydedilemedi")
		}

		services.OpenInViewer(path)

		SetToast(e, "success", "Teklif kaydedildi: "+path)
		pageData, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, pageData)
	}
}

// exportFilename builds a timestamped download name from the customer name.
func exportFilename(customerName, ext string) string {
	stem := services.SanitizeFolderName(customerName)
	if stem == "" {
		stem = "Teklif"
	}
	return fmt.Sprintf("%s_%s.%s", stem, time.Now().Format("20060102_150405"), ext)
}
