package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"quotegen/store"
	"quotegen/templates"
)

// HandleQuotationList handles GET /quotations: the sidebar list fragment,
// used as the non-streaming fallback for refreshing the navigation.
func HandleQuotationList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		activeID := e.Request.URL.Query().Get("active")
		if activeID == "" {
			activeID = activeQuotationID(e.Request.Header.Get("HX-Current-URL"))
		}
		return templates.SidebarList(sidebarData(st, activeID)).Render(e.Request.Context(), e.Response)
	}
}
