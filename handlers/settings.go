package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/services"
)

// latestQuote returns the most recently created quote, for handlers that are
// not scoped to a quote in the URL.
func latestQuote(app *pocketbase.PocketBase) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return nil, err
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 1, 0, nil)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no quotes exist")
	}
	return records[0], nil
}

// HandleSetSaveFolder returns a handler that stores a custom save folder.
func HandleSetSaveFolder(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(400, "Invalid form data")
		}

		folder := strings.TrimSpace(e.Request.PostFormValue("folder"))
		if folder == "" {
			WarningToast(e, "Lütfen bir klasör yolu girin.")
		} else if err := settings.SetSaveFolder(folder); err != nil {
			log.Printf("settings: could not save folder: %v", err)
			return ErrorToast(e, 500, "Kayıt klasörü kaydedilemedi")
		} else {
			SetToast(e, "success", "Kayıt klasörü güncellendi")
		}

		quote, err := latestQuote(app)
		if err != nil {
			log.Printf("settings: could not find quote: %v", err)
			return e.String(404, "Quote not found")
		}
		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}

// HandleResetSaveFolder returns a handler that reverts to the default save
// folder next to the application.
func HandleResetSaveFolder(app *pocketbase.PocketBase, settings *services.Settings, baseDir string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := settings.ResetSaveFolder(); err != nil {
			log.Printf("settings: could not reset folder: %v", err)
			return ErrorToast(e, 500, "Kayıt klasörü sıfırlanamadı")
		}
		SetToast(e, "success", "Varsayılan kayıt klasörüne dönüldü")

		quote, err := latestQuote(app)
		if err != nil {
			log.Printf("settings: could not find quote: %v", err)
			return e.String(404, "Quote not found")
		}
		data, err := buildQuotePageData(app, quote, settings.SaveFolder(baseDir))
		if err != nil {
			return e.String(500, "Could not load quote")
		}
		return renderQuote(e, data)
	}
}
