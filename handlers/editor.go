package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase/core"

	"quotegen/services"
	"quotegen/store"
	"quotegen/templates"
)

// HandleEditor handles GET /. With an ?id= query parameter it loads that
// quotation into the form; without one, or when the id does not resolve, it
// shows a blank quotation pre-filled from the company profile.
func HandleEditor(st *store.Store, profile services.CompanyProfile) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.URL.Query().Get("id")

		q := services.NewQuotation(profile)
		if id != "" {
			saved, err := st.Get(id)
			if err != nil {
				log.Printf("editor: quotation %q not found: %v", id, err)
				id = ""
			} else {
				q = saved.Quotation
			}
		}

		data := editorData(id, q, nil)
		// Skeleton rows until the SSE stream delivers the first snapshot.
		sidebar := templates.SidebarData{ActiveID: id, Loading: true}
		return templates.EditorPage(data, sidebar).Render(e.Request.Context(), e.Response)
	}
}
