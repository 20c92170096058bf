package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"quotegen/collections"
	"quotegen/handlers"
	"quotegen/services"
	"quotegen/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	profile := services.LoadCompanyProfile()
	assets := services.LoadPDFAssets("./static")

	app := pocketbase.New()
	st := store.New(app)

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)

		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Editor shell. ?id= selects the active quotation.
		se.Router.GET("/", handlers.HandleEditor(st, profile))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.POST("/quotations", handlers.HandleQuotationCreate(st))
		se.Router.POST("/quotations/{id}/save", handlers.HandleQuotationSave(st))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(st))

		// ── Sidebar list: fragment + live stream ─────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(st))
		se.Router.GET("/quotations/stream", handlers.HandleQuotationStream(st))

		// ── Line item table fragments ────────────────────────────
		se.Router.POST("/editor/line-items/add", handlers.HandleLineItemAdd())
		se.Router.POST("/editor/line-items/remove/{index}", handlers.HandleLineItemRemove())

		// ── Document export ──────────────────────────────────────
		se.Router.POST("/quotations/export", handlers.HandleExportPDF(st, assets))
		se.Router.POST("/quotations/export/excel", handlers.HandleExportExcel(st))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
