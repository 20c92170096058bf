package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/store"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// resolveExport parses and validates the posted form, saving the quotation
// before the document is generated: a new record is created, an edited one is
// updated, and an unchanged one is left alone. The returned flag reports
// whether a validation response was already written.
func resolveExport(e *core.RequestEvent, st *store.Store) (services.Quotation, bool, error) {
	q, parseErrs, err := parseQuotationRequest(e)
	if err != nil {
		return services.Quotation{}, true, ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	id := strings.TrimSpace(e.Request.FormValue("id"))

	errs := services.ValidateQuotation(q)
	errs.Merge(parseErrs)
	if len(errs) > 0 {
		return services.Quotation{}, true, renderEditorWithErrors(e, id, q, errs)
	}

	if id == "" {
		newID, err := st.Create(q)
		if err != nil {
			log.Printf("export: could not create quotation: %v", err)
			return services.Quotation{}, true, ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		setSavedQuotationCookie(e, newID)
		return q, false, nil
	}

	saved, err := st.Get(id)
	if err != nil {
		log.Printf("export: quotation %q not found: %v", id, err)
		return services.Quotation{}, true, ErrorToast(e, http.StatusNotFound, "Quotation not found")
	}
	if !q.Equal(saved.Quotation) {
		if err := st.Update(id, q); err != nil {
			log.Printf("export: could not update quotation %q: %v", id, err)
			return services.Quotation{}, true, ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
	}
	return q, false, nil
}

// setSavedQuotationCookie hands the id of an implicitly created record back
// to the page. A download response cannot navigate, so the client script
// reads the cookie and moves the form onto the persisted record; otherwise
// the next save or export would create a duplicate.
func setSavedQuotationCookie(e *core.RequestEvent, id string) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     "saved_quotation",
		Value:    id,
		Path:     "/",
		MaxAge:   30,
		HttpOnly: false, // JS needs to read it
		SameSite: http.SameSiteLaxMode,
	})
}

// HandleExportPDF handles POST /quotations/export: saves if needed, then
// streams the generated PDF as a download.
func HandleExportPDF(st *store.Store, assets services.PDFAssets) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, done, err := resolveExport(e, st)
		if done {
			return err
		}

		pdfBytes, err := services.GenerateQuotationPDF(q, assets)
		if err != nil {
			log.Printf("export: failed to generate PDF: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := sanitizeFilename(q.QuoteName) + ".pdf"
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleExportExcel handles POST /quotations/export/excel with the same
// save-then-download behavior as the PDF export.
func HandleExportExcel(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, done, err := resolveExport(e, st)
		if done {
			return err
		}

		xlsxBytes, err := services.GenerateQuotationExcel(q)
		if err != nil {
			log.Printf("export: failed to generate Excel file: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := sanitizeFilename(q.QuoteName) + ".xlsx"
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
