package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/store"
)

// HandleQuotationDelete handles DELETE /quotations/{id}. When the deleted
// record is the one open in the editor, the client is redirected to a blank
// form; otherwise the sidebar refreshes via the live stream and the response
// body is ignored.
func HandleQuotationDelete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID")
		}

		if err := st.Delete(id); err != nil {
			log.Printf("delete: could not delete quotation %q: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		if activeQuotationID(e.Request.Header.Get("HX-Current-URL")) == id {
			e.Response.Header().Set("HX-Redirect", "/")
		}

		SetToast(e, "success", "Quotation deleted")
		return e.String(http.StatusOK, "")
	}
}

// activeQuotationID extracts the ?id= parameter from the page URL htmx
// reports, identifying which record the editor currently shows.
func activeQuotationID(currentURL string) string {
	if currentURL == "" {
		return ""
	}
	u, err := url.Parse(currentURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("id")
}
