package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quoteform/collections"
	"quoteform/handlers"
	"quoteform/services"
)

func main() {
	app := pocketbase.New()

	baseDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	settingsDir := filepath.Join(baseDir, "setup")
	if err := os.MkdirAll(settingsDir, 0o755); err != nil {
		log.Printf("Warning: could not create settings dir: %v", err)
	}
	settings := services.LoadSettings(filepath.Join(settingsDir, "teklif_ayarlari.json"))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quote form ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleHome(app, settings, baseDir))
		se.Router.GET("/quotes/{quoteId}", handlers.HandleQuoteView(app, settings, baseDir))
		se.Router.POST("/quotes/{quoteId}/customer", handlers.HandleCustomerUpdate(app, settings, baseDir))

		// ── Material table ───────────────────────────────────────
		se.Router.POST("/quotes/{quoteId}/items", handlers.HandleLineItemAdd(app, settings, baseDir))
		se.Router.POST("/quotes/{quoteId}/items/delete", handlers.HandleLineItemDelete(app, settings, baseDir))
		se.Router.POST("/quotes/{quoteId}/items/{rowId}/cell/{column}", handlers.HandleLineItemCellEdit(app, settings, baseDir))

		// ── Payment plan ─────────────────────────────────────────
		se.Router.POST("/quotes/{quoteId}/payments", handlers.HandlePaymentAdd(app, settings, baseDir))
		se.Router.POST("/quotes/{quoteId}/payments/delete", handlers.HandlePaymentDelete(app, settings, baseDir))
		se.Router.POST("/quotes/{quoteId}/payments/{rowId}/cell/{column}", handlers.HandlePaymentCellEdit(app, settings, baseDir))

		// ── Document output ──────────────────────────────────────
		se.Router.GET("/quotes/{quoteId}/export/xlsx", handlers.HandleExportExcel(app, baseDir))
		se.Router.GET("/quotes/{quoteId}/export/pdf", handlers.HandleExportPDF(app, baseDir))
		se.Router.POST("/quotes/{quoteId}/save", handlers.HandleSaveQuote(app, settings, baseDir))

		// ── Save folder settings ─────────────────────────────────
		se.Router.POST("/settings/folder", handlers.HandleSetSaveFolder(app, settings, baseDir))
		se.Router.POST("/settings/reset-folder", handlers.HandleResetSaveFolder(app, settings, baseDir))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
